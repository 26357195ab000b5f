package blob

import (
	"errors"
	"fmt"
)

// Sentinel errors for common storage API error cases.
var (
	ErrUnauthorized = errors.New("blob: unauthorized (invalid access key)")
	ErrNotFound     = errors.New("blob: object not found")
)

// APIError represents an unexpected error response from the storage API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("blob: storage API error (status %d): %s", e.StatusCode, e.Message)
}

// parseError maps a storage API error response to a client error.
func parseError(statusCode int, body []byte) error {
	switch statusCode {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}
