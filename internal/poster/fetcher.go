// Package poster downloads and packages movie poster images.
package poster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/cinedex/cinedex/internal/gateway"
	"github.com/cinedex/cinedex/internal/ratelimit"
)

const (
	defaultTimeout = 10 * time.Second
	// Posters come from third-party image hosts; keep bulk downloads polite.
	defaultRatePerSecond = 4
)

// Fetcher downloads poster images with a shared rate limit.
type Fetcher struct {
	httpClient gateway.HTTPDoer
	limiter    *ratelimit.Limiter
}

// NewFetcher creates a poster fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	fetcher := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    ratelimit.New("posters", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(fetcher)
	}

	return fetcher
}

// Option is a functional option for configuring the Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client, mainly for tests.
func WithHTTPClient(c gateway.HTTPDoer) Option {
	return func(fetcher *Fetcher) {
		if c != nil {
			fetcher.httpClient = c
		}
	}
}

// WithRateLimiter sets a custom rate limiter.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(fetcher *Fetcher) {
		if limiter != nil {
			fetcher.limiter = limiter
		}
	}
}

// Fetch downloads one poster and returns the raw image bytes.
func (f *Fetcher) Fetch(ctx context.Context, posterURL string) ([]byte, error) {
	if posterURL == "" {
		return nil, fmt.Errorf("no poster URL")
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build poster request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download poster: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading poster from %s", resp.StatusCode, posterURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read poster body: %w", err)
	}

	return data, nil
}

// Validate reports whether the URL answers a HEAD request with an image
// content type.
func (f *Fetcher) Validate(ctx context.Context, posterURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, posterURL, nil)
	if err != nil {
		return false
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	return strings.HasPrefix(contentType, "image/")
}

// SafeFilename builds a filesystem-safe poster filename from a movie title
// and year, e.g. "The Matrix_1999.jpg". Only letters, digits, spaces,
// dashes and underscores survive; the year goes through the same sieve, so
// a sentinel year cannot put a path separator into the name.
func SafeFilename(title, year string) string {
	base := fmt.Sprintf("%s_%s", title, year)
	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ") + ".jpg"
}
