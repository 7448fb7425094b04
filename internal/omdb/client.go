// Package omdb provides the OMDb catalog provider.
package omdb

import (
	"strings"

	"github.com/cinedex/cinedex/internal/gateway"
)

const defaultBaseURL = "http://www.omdbapi.com/"

// Client is an OMDb API client producing normalized catalog records.
type Client struct {
	apiKey  string
	baseURL string
	gateway *gateway.Client
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		gateway: gateway.NewClient(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the OMDb API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/") + "/"
		}
	}
}

// WithGateway sets a custom gateway client, mainly for tests.
func WithGateway(gw *gateway.Client) Option {
	return func(client *Client) {
		if gw != nil {
			client.gateway = gw
		}
	}
}
