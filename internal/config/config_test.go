package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigReadsKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("tmdb.api_key", "tmdb-key")
	viper.Set("omdb.api_key", "omdb-key")
	viper.Set("selection.dbfile", "/tmp/sel.db")

	InitConfig()

	assert.Equal(t, "tmdb-key", TMDBAPIKey)
	assert.Equal(t, "omdb-key", OMDBAPIKey)
	assert.Equal(t, "/tmp/sel.db", SelectionDBFile)
	assert.Equal(t, "fr-FR", TMDBLanguage)
	assert.Equal(t, "./exports/", ExportDir)
}

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Empty(t, TMDBAPIKey)
	assert.Empty(t, OMDBAPIKey)
	assert.Equal(t, "./selection.db", SelectionDBFile)
}
