// Package transport is the raw HTTP boundary. It returns a RawResponse for
// any HTTP status and reserves Go errors for transport-level failures
// (timeout, DNS, connection reset), so the executor can tell the two apart.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RawResponse is the undecoded result of one upstream call. Created here,
// consumed exactly once by a response normalizer.
type RawResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Client issues GET and POST calls against the content platform.
type Client struct {
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient builds a transport client with a 30s default timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: 30 * time.Second},
		userAgent: "ldsmcp/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET. The returned error is non-nil only for transport
// failures; HTTP error statuses come back inside the RawResponse.
func (c *Client) Get(ctx context.Context, url string) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/html")
	return c.do(req)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, url string, jsonBody []byte) (*RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*RawResponse, error) {
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &RawResponse{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
