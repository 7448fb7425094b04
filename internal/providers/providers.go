// Package providers wires the configured catalog clients into a dispatcher.
package providers

import (
	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/config"
	"github.com/cinedex/cinedex/internal/omdb"
	"github.com/cinedex/cinedex/internal/tmdb"
)

// NewService builds the catalog dispatcher over the providers configured
// in the global config. Clients are created even when their API key is
// missing; they report the ConfigMissing condition themselves before any
// network call.
func NewService() *catalog.Service {
	return catalog.NewService(map[catalog.Provider]catalog.Searcher{
		catalog.ProviderTMDB: tmdb.NewClient(config.TMDBAPIKey, tmdb.WithLanguage(config.TMDBLanguage)),
		catalog.ProviderOMDB: omdb.NewClient(config.OMDBAPIKey),
	})
}
