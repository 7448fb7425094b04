package providers

import (
	"context"
	"testing"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/config"
	cderrors "github.com/cinedex/cinedex/internal/errors"
	"github.com/cinedex/cinedex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceKnowsBothProviders(t *testing.T) {
	testutil.WithConfig(t, func() {
		config.TMDBAPIKey = "tmdb-key"
		config.OMDBAPIKey = "omdb-key"
		config.TMDBLanguage = "fr-FR"
	})

	service := NewService()
	require.NotNil(t, service)

	// Both providers resolve; only a bogus name is rejected.
	for _, name := range []string{"tmdb", "omdb"} {
		_, err := catalog.ParseProvider(name)
		assert.NoError(t, err)
	}
}

func TestNewServiceReportsMissingKey(t *testing.T) {
	testutil.WithConfig(t, func() {
		config.TMDBAPIKey = ""
		config.OMDBAPIKey = ""
	})

	service := NewService()

	_, err := service.Search(context.Background(), "matrix", catalog.ProviderTMDB)
	assert.True(t, cderrors.IsConfigMissingError(err))

	_, err = service.Search(context.Background(), "matrix", catalog.ProviderOMDB)
	assert.True(t, cderrors.IsConfigMissingError(err))
}
