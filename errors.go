package sitepanel

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the client configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNetwork is matched by every transport-level failure (see NetworkError)
	ErrNetwork = errors.New("network error")

	// ErrNotDeletable is returned when deleting from a collection that has no DELETE endpoint
	ErrNotDeletable = errors.New("collection does not support delete")

	// ErrInvalidID is returned when a record id is empty
	ErrInvalidID = errors.New("invalid record id")

	// ErrUnknownCollection is returned for collection names the API does not serve
	ErrUnknownCollection = errors.New("unknown collection")
)

// NetworkError is a request that never produced an HTTP response.
type NetworkError struct {
	Op  string // Operation that failed, e.g. "GET /projects"
	Err error  // Underlying transport error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNetwork) true for every NetworkError
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Op         string // Operation that failed, e.g. "POST /contacts"
	StatusCode int    // HTTP status code
	Message    string // Server-provided message, empty if the body carried none
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// IsAPIError reports whether err is (or wraps) an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ServerMessage returns the message the server attached to a failed request,
// or fallback when there is none.
func ServerMessage(err error, fallback string) string {
	if apiErr, ok := IsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
