package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session snapshot exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrCartNotFound indicates that the owner has no cart snapshot
	ErrCartNotFound = errors.New("cart not found")
)
