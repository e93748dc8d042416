package entity

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials means no client identity is configured. It is fatal
// and never retried.
var ErrMissingCredentials = errors.New("amadeus client credentials are not configured")

// ErrMalformedResponse means the provider payload could not be normalized.
var ErrMalformedResponse = errors.New("malformed provider response")

// AuthError means the token endpoint rejected the request or a downstream
// call failed authorization. Callers retry at most once with a fresh token.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed with status %d: %s", e.Status, e.Body)
}

// APIError is a non-2xx response from a search endpoint.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Body)
}

// NetworkError is a transport-level failure before any HTTP status arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
