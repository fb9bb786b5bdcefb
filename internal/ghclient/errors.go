package ghclient

import (
	"errors"
	"fmt"
)

// Typed errors for the strict profile fetch.
var (
	// ErrNotFound means the account does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrRateLimited means the core rate ceiling was hit.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// StatusError is any other non-2xx upstream response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream error (status %d)", e.Code)
}
