package kavita

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx response from the Kavita server.
//
// The error carries the request method and path, the HTTP status code,
// and a bounded snippet of the response body for diagnostics.
type HTTPError struct {
	Method     string // HTTP method of the failed request
	Path       string // API path of the failed request
	StatusCode int    // HTTP status code returned by the server
	Body       string // Trimmed snippet of the response body
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("kavita: %s %s returned %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("kavita: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is matches any *HTTPError with the same status code.
//
// This allows errors.Is() to work with *HTTPError sentinels.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Predefined errors for common cases.
var (
	// ErrMissingToken is returned when the login response does not
	// contain an authentication token.
	ErrMissingToken = errors.New("kavita: login response missing token")

	// ErrNotAuthenticated is returned when an operation requiring a
	// bearer token is attempted before Login.
	ErrNotAuthenticated = errors.New("kavita: not authenticated, call Login first")
)
