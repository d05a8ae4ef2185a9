// Package rest implements the API ports against the remote college
// management service over JSON HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cmsadmin/internal/domain"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 15 * time.Second

// Config holds the client configuration. Zero values fall back to
// defaults, except BaseURL which is required.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin typed wrapper over the remote REST API. It attaches
// bearer credentials from the token source and normalizes failure bodies
// into *APIError values.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  domain.TokenSource
}

// New creates a Client for the given base URL and token source.
func New(cfg Config, tokens domain.TokenSource) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
	}
}

// Ensure the ports are met.
var _ domain.AuthAPI = (*Client)(nil)
var _ domain.DepartmentAPI = (*Client)(nil)
var _ domain.UserAPI = (*Client)(nil)
var _ domain.CourseAPI = (*Client)(nil)
var _ domain.TeacherAPI = (*Client)(nil)

// APIError is a non-success response from the service. Detail carries the
// server's explanation when the error body was parseable.
type APIError struct {
	Op     string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
}

// request builds a JSON request. Authenticated requests fail immediately
// with ErrNotAuthenticated when no token is available; no network call is
// attempted.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any, authed bool) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	if authed {
		token, ok := c.tokens.Token()
		if !ok {
			return nil, domain.ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes a successful response into out when
// out is non-nil. Non-2xx responses become *APIError with the detail field
// extracted from the body when present.
func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFrom(resp, op)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// errorFrom reads a failure body and extracts its detail field. A body
// that is missing or unparseable leaves Detail empty and the generic
// message applies.
func (c *Client) errorFrom(resp *http.Response, op string) error {
	apiErr := &APIError{Op: op, Status: resp.StatusCode}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

// Health probes the service root health endpoint without credentials.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.request(ctx, http.MethodGet, "/health", nil, nil, false)
	if err != nil {
		return err
	}
	return c.do(req, "health check", nil)
}
