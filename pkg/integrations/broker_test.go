package integrations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2026, 8, 19, 14, 0, 0, 0, time.UTC)
}

func TestBroker_GenerateAuthURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/url", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])
		assert.Equal(t, "salesforce", body["provider"])

		json.NewEncoder(w).Encode(map[string]string{"auth_url": "https://auth.example.com/start"})
	}))
	defer srv.Close()

	b := NewBroker(srv.URL, "secret", nil)
	url, err := b.GenerateAuthURL(context.Background(), "u1", "salesforce", "https://app.example.com/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com/start", url)
}

func TestBroker_ExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/auth/exchange", r.URL.Path)
		json.NewEncoder(w).Encode(Connection{ID: "conn-1", UserID: "u1", Provider: "gmail"})
	}))
	defer srv.Close()

	b := NewBroker(srv.URL, "", nil)
	conn, err := b.ExchangeCode(context.Background(), "u1", "gmail", "code-123")
	require.NoError(t, err)
	assert.Equal(t, "conn-1", conn.ID)
	assert.Equal(t, "gmail", conn.Provider)
}

func TestBroker_ExecuteAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/actions/execute", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "crm", body["provider"])
		assert.Equal(t, "update_deal", body["action"])

		json.NewEncoder(w).Encode(map[string]interface{}{"deal_id": "d-9", "updated": true})
	}))
	defer srv.Close()

	b := NewBroker(srv.URL, "", nil)
	out, err := b.ExecuteAction(context.Background(), "u1", "crm", "update_deal", map[string]interface{}{"stage": "won"})
	require.NoError(t, err)
	assert.Equal(t, "d-9", out["deal_id"])
}

func TestBroker_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "connection revoked", http.StatusForbidden)
	}))
	defer srv.Close()

	b := NewBroker(srv.URL, "", nil)
	_, err := b.ExecuteAction(context.Background(), "u1", "crm", "update_deal", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCalendarSource_ParsesEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"events": []map[string]interface{}{
				{"id": "ev-1", "title": "Acme discovery", "ended_at": "2026-08-19T13:30:00Z"},
				{"title": "missing id, dropped"},
			},
		})
	}))
	defer srv.Close()

	src := NewCalendarSource(NewBroker(srv.URL, "", nil), nil)
	meetings, err := src.RecentlyEnded(context.Background(), "u1", testNow())
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "ev-1", meetings[0].ID)
	assert.Equal(t, "Acme discovery", meetings[0].Title)
	assert.False(t, meetings[0].EndedAt.IsZero())
}
