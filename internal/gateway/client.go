// Package gateway performs the HTTP calls against the movie catalog APIs.
//
// The client issues a single GET with query parameters and a fixed timeout
// and returns either the decoded JSON body or a typed *RequestError. It
// performs no caching, no retries and no rate limiting; transport errors
// never escape it undecorated.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the fixed per-call timeout for catalog requests.
const DefaultTimeout = 10 * time.Second

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client executes GET requests against a catalog provider.
type Client struct {
	httpClient HTTPDoer
}

// NewClient creates a gateway client with the fixed default timeout.
func NewClient(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, mainly for tests.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// GetJSON issues one GET against endpoint with the given query parameters
// and decodes the JSON response into target. Any failure is returned as a
// *RequestError identifying the failing stage.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values, target any) error {
	requestURL := endpoint
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &RequestError{Kind: KindNetwork, URL: endpoint, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Kind: KindNetwork, URL: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RequestError{
			Kind:   KindStatus,
			URL:    endpoint,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &RequestError{Kind: KindDecode, URL: endpoint, Err: err}
	}

	return nil
}
