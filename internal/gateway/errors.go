package gateway

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the stage at which a request failed.
type ErrorKind int

const (
	// KindNetwork covers transport-level failures, including timeouts.
	KindNetwork ErrorKind = iota
	// KindStatus covers non-2xx HTTP responses.
	KindStatus
	// KindDecode covers malformed JSON bodies.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// RequestError is the typed failure surfaced for any catalog call.
type RequestError struct {
	Kind   ErrorKind
	URL    string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("catalog request failed (%s): %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is a *RequestError (even when wrapped).
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
