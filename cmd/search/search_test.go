package search

import (
	"path/filepath"
	"testing"

	"github.com/cinedex/cinedex/internal/config"
	"github.com/cinedex/cinedex/internal/fileutil"
	"github.com/cinedex/cinedex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownProvider(t *testing.T) {
	err := Run(Options{Query: "matrix", Provider: "imdb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized provider")
}

func TestRunEmptyQueryIsNoop(t *testing.T) {
	// An empty query never reaches the network, so no API key is needed.
	assert.NoError(t, Run(Options{Query: "", Provider: "tmdb"}))
}

func TestRunMissingAPIKeyIsWarning(t *testing.T) {
	testutil.WithConfig(t, func() {
		config.TMDBAPIKey = ""
	})

	// A missing key is reported, not escalated.
	assert.NoError(t, Run(Options{Query: "matrix", Provider: "tmdb"}))
}

func TestRunEmptyQuerySkipsOutputFiles(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "results.json")

	require.NoError(t, Run(Options{Query: "", Provider: "omdb", JSONOutput: outputPath}))

	assert.False(t, fileutil.FileExists(outputPath))
}
