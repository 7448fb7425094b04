package errors

import (
	"errors"
	"fmt"
)

// UnknownProviderError indicates that a caller asked for a catalog provider
// outside the supported set.
type UnknownProviderError struct {
	Name string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unrecognized provider %q", e.Name)
}

// NewUnknownProviderError creates an UnknownProviderError with the given name.
func NewUnknownProviderError(name string) *UnknownProviderError {
	return &UnknownProviderError{Name: name}
}

// IsUnknownProviderError reports whether err is an UnknownProviderError (even when wrapped).
func IsUnknownProviderError(err error) bool {
	var upErr *UnknownProviderError
	return errors.As(err, &upErr)
}
