package model

import (
	"errors"
	"fmt"
)

// ErrCacheMiss is returned by the cache gateway when no entry exists for a key.
var ErrCacheMiss = errors.New("cache entry not found")

// HTTPError is a completed HTTP exchange that ended with a non-success status.
// A transport failure that produced no response is never an HTTPError.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Status, e.Body)
}

// AuthError wraps any identity-provider failure with a human-readable message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
