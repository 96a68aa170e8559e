// Package integrations adapts the external OAuth broker that fronts
// third-party tools (Gmail, Outlook, Salesforce, HubSpot, calendars).
// The core uses it to fetch job inputs and to execute approved actions;
// the broker's own wire format stays behind this adapter.
package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// requestTimeout bounds every broker HTTP call.
const requestTimeout = 15 * time.Second

// Connection is one authorized link between a user and a provider.
type Connection struct {
	ID       string `json:"connection_id"`
	UserID   string `json:"user_id"`
	Provider string `json:"provider"`
}

// Broker is the HTTP adapter to the OAuth broker service.
type Broker struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewBroker creates a broker adapter.
func NewBroker(baseURL, apiKey string, logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// GenerateAuthURL returns the URL the user visits to authorize a provider.
func (b *Broker) GenerateAuthURL(ctx context.Context, userID, provider, redirectURI string) (string, error) {
	payload := map[string]string{
		"user_id":      userID,
		"provider":     provider,
		"redirect_uri": redirectURI,
	}
	var out struct {
		AuthURL string `json:"auth_url"`
	}
	if err := b.post(ctx, "/v1/auth/url", payload, &out); err != nil {
		return "", fmt.Errorf("failed to generate auth URL: %w", err)
	}
	return out.AuthURL, nil
}

// ExchangeCode trades an OAuth callback code for a connection.
func (b *Broker) ExchangeCode(ctx context.Context, userID, provider, code string) (*Connection, error) {
	payload := map[string]string{
		"user_id":  userID,
		"provider": provider,
		"code":     code,
	}
	var conn Connection
	if err := b.post(ctx, "/v1/auth/exchange", payload, &conn); err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return &conn, nil
}

// ExecuteAction runs a named action on the user's connection to the given
// integration. Satisfies agent.ActionBroker.
func (b *Broker) ExecuteAction(ctx context.Context, userID, integration, action string, params map[string]interface{}) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"user_id":  userID,
		"provider": integration,
		"action":   action,
		"params":   params,
	}
	var out map[string]interface{}
	if err := b.post(ctx, "/v1/actions/execute", payload, &out); err != nil {
		return nil, fmt.Errorf("failed to execute %s.%s: %w", integration, action, err)
	}
	return out, nil
}

func (b *Broker) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint, err := url.JoinPath(b.baseURL, path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("broker returned %d: %s", resp.StatusCode, snippet)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
