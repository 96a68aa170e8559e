package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidToken is returned for malformed or tampered session tokens.
var ErrInvalidToken = errors.New("invalid session token")

// Authenticator verifies a session token and returns the user it belongs
// to. Connection auth compares this against the user ID in the URL.
type Authenticator interface {
	Authenticate(token string) (userID string, err error)
}

// HMACAuthenticator verifies tokens of the form "<user_id>.<signature>",
// where the signature is hex HMAC-SHA256 of the user ID under a shared
// secret. Tokens are minted by the login service that fronts this core.
type HMACAuthenticator struct {
	secret []byte
}

// NewHMACAuthenticator creates an authenticator with the given secret.
func NewHMACAuthenticator(secret string) *HMACAuthenticator {
	return &HMACAuthenticator{secret: []byte(secret)}
}

// Authenticate validates the token signature and extracts the user ID.
func (a *HMACAuthenticator) Authenticate(token string) (string, error) {
	userID, sig, ok := strings.Cut(token, ".")
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(userID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// MintToken signs a token for the user. Exposed for tests and for the dev
// login endpoint.
func (a *HMACAuthenticator) MintToken(userID string) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(userID))
	return userID + "." + hex.EncodeToString(mac.Sum(nil))
}
