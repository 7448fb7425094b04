// Package errors defines the typed error conditions shared across cinedex.
package errors

import (
	"errors"
	"fmt"
)

// ConfigMissingError indicates that a provider has no API key configured.
// It is a distinct condition from a failed request: callers report it to
// the user and return an empty result set without touching the network.
type ConfigMissingError struct {
	Provider string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// NewConfigMissingError creates a ConfigMissingError for the given provider.
func NewConfigMissingError(provider string) *ConfigMissingError {
	return &ConfigMissingError{Provider: provider}
}

// IsConfigMissingError reports whether err is a ConfigMissingError (even when wrapped).
func IsConfigMissingError(err error) bool {
	var cmErr *ConfigMissingError
	return errors.As(err, &cmErr)
}
