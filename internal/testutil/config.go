// Package testutil provides common test utilities for the cinedex project.
package testutil

import (
	"testing"

	"github.com/cinedex/cinedex/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	TMDBAPIKey      string
	OMDBAPIKey      string
	TMDBLanguage    string
	SelectionDBFile string
	ExportDir       string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		TMDBAPIKey:      config.TMDBAPIKey,
		OMDBAPIKey:      config.OMDBAPIKey,
		TMDBLanguage:    config.TMDBLanguage,
		SelectionDBFile: config.SelectionDBFile,
		ExportDir:       config.ExportDir,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.TMDBAPIKey = state.TMDBAPIKey
	config.OMDBAPIKey = state.OMDBAPIKey
	config.TMDBLanguage = state.TMDBLanguage
	config.SelectionDBFile = state.SelectionDBFile
	config.ExportDir = state.ExportDir
}

// WithConfig runs a test with temporary config values, restoring the
// previous state and resetting viper when the test completes.
func WithConfig(t *testing.T, apply func()) {
	t.Helper()

	state := SaveConfigState()
	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})

	apply()
}
