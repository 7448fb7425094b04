package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// TMDBAPIKey is the API key for TheMovieDB
	TMDBAPIKey string
	// OMDBAPIKey is the API key for OMDb (Open Movie Database)
	OMDBAPIKey string
	// TMDBLanguage is the locale hint sent on every TMDB call
	TMDBLanguage string
	// SelectionDBFile is the path of the SQLite selection database
	SelectionDBFile string
	// ExportDir is the directory export files are written to
	ExportDir string
)

// InitConfig initializes the global configuration from viper.
func InitConfig() {
	viper.SetDefault("tmdb.language", "fr-FR")
	viper.SetDefault("selection.dbfile", "./selection.db")
	viper.SetDefault("export.dir", "./exports/")

	TMDBAPIKey = viper.GetString("tmdb.api_key")
	OMDBAPIKey = viper.GetString("omdb.api_key")
	TMDBLanguage = viper.GetString("tmdb.language")
	SelectionDBFile = viper.GetString("selection.dbfile")
	ExportDir = viper.GetString("export.dir")
}
