package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the opaque session token issued by
// the users service.
const SessionCookieName = "habitnow_session"

// Config holds the users service connection details.
type Config struct {
	APIURL string
	APIKey string
}

// User is the identity record returned by the users service for a valid
// session token.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Client talks to the external users service. All session state lives on the
// remote side; this client only exchanges tokens and resolves them to users.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new users service client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// OAuthRedirectURL asks the users service for the provider's OAuth consent
// URL that the web client should redirect the browser to.
func (c *Client) OAuthRedirectURL(provider string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/oauth/%s/redirect_url", c.cfg.APIURL, provider), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build redirect URL request: %w", err)
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)

	var payload struct {
		RedirectURL string `json:"redirect_url"`
	}
	if err := c.do(req, http.StatusOK, &payload); err != nil {
		return "", err
	}
	return payload.RedirectURL, nil
}

// ExchangeCodeForSessionToken trades an OAuth authorization code for an
// opaque session token.
func (c *Client) ExchangeCodeForSessionToken(code string) (string, error) {
	body, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return "", fmt.Errorf("failed to marshal code exchange request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.APIURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build code exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	var payload struct {
		SessionToken string `json:"session_token"`
	}
	if err := c.do(req, http.StatusOK, &payload); err != nil {
		return "", err
	}
	if payload.SessionToken == "" {
		return "", fmt.Errorf("users service returned an empty session token")
	}
	return payload.SessionToken, nil
}

// UserForSessionToken resolves a session token to the user it belongs to.
// An invalid or expired token is an error; the caller treats it as 401.
func (c *Client) UserForSessionToken(token string) (*User, error) {
	req, err := http.NewRequest(http.MethodGet, c.cfg.APIURL+"/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-api-key", c.cfg.APIKey)

	var user User
	if err := c.do(req, http.StatusOK, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("users service returned a user without an ID")
	}
	return &user, nil
}

// DeleteSession invalidates a session token on the users service.
func (c *Client) DeleteSession(token string) error {
	req, err := http.NewRequest(http.MethodDelete, c.cfg.APIURL+"/sessions/me", nil)
	if err != nil {
		return fmt.Errorf("failed to build session delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-api-key", c.cfg.APIKey)

	return c.do(req, http.StatusOK, nil)
}

// do executes a request and decodes the JSON response into out when the
// status matches. Response bodies of failed requests are drained but not
// echoed to callers.
func (c *Client) do(req *http.Request, wantStatus int, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("users service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("users service returned status %d for %s %s", resp.StatusCode, req.Method, req.URL.Path)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode users service response: %w", err)
	}
	return nil
}
