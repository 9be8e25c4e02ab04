// Package api implements the authenticated HTTP pipeline for the
// HaloBharat storefront backend.
//
// Every outgoing request carries a valid bearer token when one exists: a
// stale access token is exchanged for a fresh one before the request is
// sent, and a 401 response triggers a single coordinated logout instead of
// leaking raw auth errors to every call site.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/apperr"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/config"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/session"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/version"
)

const refreshPath = "/account/token/refresh/"

// Client is an HTTP client for the HaloBharat API.
type Client struct {
	httpClient *http.Client
	session    *session.Store
	watcher    *SessionWatcher
	baseURL    string
	log        zerolog.Logger

	// refreshMu makes the refresh exchange single-flight: concurrent
	// requests that all observe an expired token produce one call.
	refreshMu sync.Mutex
}

// Response wraps an API response.
type Response struct {
	Data       json.RawMessage
	StatusCode int
	Headers    http.Header
}

// UnmarshalData unmarshals the response data into the given value.
func (r *Response) UnmarshalData(v any) error {
	return json.Unmarshal(r.Data, v)
}

// NewClient creates a new API client.
func NewClient(cfg *config.Config, sess *session.Store, watcher *SessionWatcher, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		session:    sess,
		watcher:    watcher,
		baseURL:    config.NormalizeBaseURL(cfg.BaseURL),
		log:        log,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.doRequest(ctx, http.MethodPut, path, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.doRequest(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*Response, error) {
	token := c.bearerToken(ctx)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response reached the client: connectivity, DNS, timeout.
		return nil, apperr.ErrNetwork(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.ErrNetwork(err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &Response{
			Data:       respBody,
			StatusCode: resp.StatusCode,
			Headers:    resp.Header,
		}, nil

	case resp.StatusCode == http.StatusUnauthorized:
		// The credential is no longer valid. Dispatch the logout flow
		// (de-duplicated across concurrent requests), then still reject.
		c.watcher.NotifyExpired(ctx)
		return nil, apperr.ErrSessionExpired()

	default:
		return nil, apperr.ErrAPI(resp.StatusCode, extractMessage(respBody), respBody)
	}
}

// bearerToken returns the token to attach to the outgoing request,
// refreshing a stale one first. Failures here are logged and swallowed:
// a storage or refresh glitch must not block the request itself, and some
// endpoints are public anyway.
func (c *Client) bearerToken(ctx context.Context) string {
	cred, err := c.session.Load()
	if err != nil {
		c.log.Warn().Err(err).Msg("session read failed, sending request unauthenticated")
		return ""
	}
	if cred == nil || cred.AccessToken == "" {
		return ""
	}
	if !tokenExpired(cred.AccessToken, time.Now()) {
		return cred.AccessToken
	}

	refreshed, err := c.refreshToken(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("token refresh failed, proceeding with stored token")
		return cred.AccessToken
	}
	if refreshed == "" {
		return cred.AccessToken
	}
	return refreshed
}

// refreshToken exchanges the stored refresh token for a new access token
// and persists the updated credential. It returns "" with a nil error when
// no refresh is possible (logged out, or no refresh token stored). A non-OK
// status from the exchange is a hard failure.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	cred, err := c.session.Load()
	if err != nil {
		return "", err
	}
	if cred == nil || cred.RefreshToken == "" {
		return "", nil
	}
	// A sibling request may have refreshed while we waited on the lock.
	if cred.AccessToken != "" && !tokenExpired(cred.AccessToken, time.Now()) {
		return cred.AccessToken, nil
	}

	payload, err := json.Marshal(map[string]string{"refresh": cred.RefreshToken})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(refreshPath), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.ErrNetwork(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.ErrNetwork(err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperr.ErrRefresh(resp.StatusCode, extractMessage(body))
	}

	var tokenResp struct {
		Access       string `json:"access"`
		AccessToken  string `json:"access_token"`
		Refresh      string `json:"refresh"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", err
	}

	access := tokenResp.Access
	if access == "" {
		access = tokenResp.AccessToken
	}
	if access == "" {
		return "", apperr.ErrRefresh(resp.StatusCode, "refresh response carried no access token")
	}

	updated := &session.Credential{
		AccessToken:  access,
		RefreshToken: cred.RefreshToken, // carried forward unless rotated
		Extra:        cred.Extra,
	}
	if tokenResp.Refresh != "" {
		updated.RefreshToken = tokenResp.Refresh
	} else if tokenResp.RefreshToken != "" {
		updated.RefreshToken = tokenResp.RefreshToken
	}

	if _, err := c.session.Save(updated); err != nil {
		return "", err
	}
	c.log.Debug().Msg("access token refreshed")
	return access, nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// extractMessage pulls a display message out of an error response body,
// preferring the backend's "message" field, then "detail".
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return ""
}
