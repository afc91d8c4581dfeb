package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	nrpkg "github.com/karibustays/karibu/internal/pkg/newrelic"
)

// Client is a JSON HTTP client for communicating with payment providers
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// headers applied to every request, set through the auth options
	authHeader string
	authValue  string
}

// Option mutates client construction
type Option func(*Client)

// WithBearerToken sends Authorization: Bearer <token> on every request
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.authHeader = "Authorization"
		c.authValue = "Bearer " + token
	}
}

// WithAuthorization sends a raw Authorization header value on every request
func WithAuthorization(value string) Option {
	return func(c *Client) {
		c.authHeader = "Authorization"
		c.authValue = value
	}
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPError represents a non-2xx provider response
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// PostJSON sends a JSON body and decodes a JSON response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req, result)
}

// GetJSON performs a GET request and decodes a JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return err
	}

	return c.do(ctx, req, result)
}

func (c *Client) do(ctx context.Context, req *http.Request, result interface{}) error {
	if c.authHeader != "" {
		req.Header.Set(c.authHeader, c.authValue)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.HTTPClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}

	return nil
}
