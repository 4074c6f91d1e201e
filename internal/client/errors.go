package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthRequired is returned before any network I/O when an
	// authenticated request is made and no credential can be resolved.
	ErrAuthRequired = errors.New("authentication required")
	// ErrMalformedResponse is wrapped when a 2xx body cannot be decoded into
	// the expected type or fails its validation.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnsupportedMethod is returned for methods outside GET/POST/PUT/PATCH/DELETE.
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// APIError is a non-2xx response from the backend. Its text is the
// server-provided message, or "<code> <status text>" when there is none.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError wraps a failure to get any response at all.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
