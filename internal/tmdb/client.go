// Package tmdb provides the TMDB catalog provider.
package tmdb

import (
	"strings"

	"github.com/cinedex/cinedex/internal/gateway"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org/3"
	defaultImageBaseURL = "https://image.tmdb.org/t/p/w300"
	defaultLanguage     = "fr-FR"
)

// Client is a TMDB API client producing normalized catalog records.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	language     string
	gateway      *gateway.Client
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		language:     defaultLanguage,
		gateway:      gateway.NewClient(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the TMDB API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithImageBaseURL sets a custom base URL for TMDB poster images.
func WithImageBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.imageBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithLanguage sets the locale hint passed on every TMDB call.
func WithLanguage(language string) Option {
	return func(client *Client) {
		if language != "" {
			client.language = language
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
