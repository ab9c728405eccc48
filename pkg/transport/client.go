package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
	authTypeBearer      = "Bearer"

	// Error bodies are bounded; submissions never stream large responses.
	maxErrorBodyBytes = 64 << 10
)

// Client posts JSON-encoded submission bodies to the bot manager. The zero
// value is not usable; construct with New.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures the client before construction.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, for timeouts or test
// doubles.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// New constructs a Client with a 30 second default timeout.
func New(options ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// PostJSON issues a single POST with the given pre-encoded JSON body. A
// non-empty token is attached as a bearer Authorization header. There are no
// retries; a failed submission is surfaced to the caller for correction.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body []byte, token string) error {
	if ctx == nil {
		return errors.New("transport: context is required")
	}
	if endpoint == "" {
		return errors.New("transport: endpoint is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("transport: build request: %w", err)
	}
	req.Header.Set(headerContentType, contentTypeJSON)
	if token != "" {
		req.Header.Set(headerAuthorization, authTypeBearer+" "+token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transport: post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return newAPIError(resp.StatusCode, raw)
}
