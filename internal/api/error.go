// internal/api/error.go
package api

import (
	"errors"
	"fmt"
)

// Error represents a non-2xx response from the backend. Message carries the
// server-provided error payload verbatim so callers can surface it unchanged.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// AsError unwraps err into an *Error if the failure was server-reported.
// Network and decoding failures are plain wrapped errors and return false.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is a server-reported error with the given status.
func IsStatus(err error, statusCode int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.StatusCode == statusCode
}
