package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cinedex/cinedex/internal/errors"
)

// Searcher is one catalog provider's search entry point. Implementations
// return fully normalized records in the provider's own result order,
// already capped at MaxResults.
type Searcher interface {
	// Search runs a free-text movie search. It returns a
	// *errors.ConfigMissingError before any network call when the
	// provider has no API key.
	Search(ctx context.Context, query string) ([]Record, error)
	// Lookup fetches and normalizes a single movie by its provider-native id.
	Lookup(ctx context.Context, id string) (Record, error)
}

// Service routes queries to the matching provider.
type Service struct {
	providers map[Provider]Searcher
}

// NewService creates a dispatcher over the given providers.
func NewService(providers map[Provider]Searcher) *Service {
	return &Service{providers: providers}
}

// ParseProvider maps a user-supplied name to a known Provider.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(name) {
	case "tmdb":
		return ProviderTMDB, nil
	case "omdb":
		return ProviderOMDB, nil
	default:
		return "", errors.NewUnknownProviderError(name)
	}
}

// Search runs a free-text search against one provider.
//
// Every failure mode resolves to an empty list: an empty query issues no
// network call, an unknown provider returns an UnknownProviderError, a
// missing API key returns a ConfigMissingError, and a failed primary search
// call is logged as a warning and swallowed. Nothing here panics or lets a
// transport fault escape.
func (s *Service) Search(ctx context.Context, query string, provider Provider) ([]Record, error) {
	if query == "" {
		return nil, nil
	}

	searcher, ok := s.providers[provider]
	if !ok {
		return nil, errors.NewUnknownProviderError(string(provider))
	}

	records, err := searcher.Search(ctx, query)
	if err != nil {
		if errors.IsConfigMissingError(err) {
			return nil, err
		}
		slog.Warn("Search failed", "provider", provider, "query", query, "error", err)
		return nil, nil
	}

	return records, nil
}

// SearchWithFilters runs Search and applies the post-filters to the result.
func (s *Service) SearchWithFilters(ctx context.Context, query string, provider Provider, filters Filters) ([]Record, error) {
	records, err := s.Search(ctx, query, provider)
	if err != nil {
		return nil, err
	}
	return filters.Apply(records), nil
}

// Lookup fetches one movie by provider-native id.
func (s *Service) Lookup(ctx context.Context, provider Provider, id string) (Record, error) {
	searcher, ok := s.providers[provider]
	if !ok {
		return Record{}, errors.NewUnknownProviderError(string(provider))
	}
	return searcher.Lookup(ctx, id)
}
