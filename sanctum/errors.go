package sanctum

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid sanctum configuration")
	// ErrClientClosed is returned by requests issued after Close
	ErrClientClosed = errors.New("sanctum client is closed")
	// ErrInvalidResponse indicates a successful response whose body is not JSON
	ErrInvalidResponse = errors.New("invalid response from sanctum API")
	// ErrNotFound matches any HTTPError carrying a 404 status
	ErrNotFound = errors.New("resource not found")
)

// HTTPError is returned for every response outside the 2xx range.
// Data holds the decoded JSON error body, or the raw body text when it
// could not be decoded.
type HTTPError struct {
	StatusCode int
	Data       any
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("sanctum: got %d with message %v", e.StatusCode, e.Data)
}

// Is reports whether the error matches target. A 404 HTTPError matches ErrNotFound.
func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.IsNotFound()
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether err is, or wraps, a 404 response from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsHTTPError returns the HTTPError wrapped in err, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
