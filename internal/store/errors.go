package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by LoadSession when no session row is
	// persisted in the local cache.
	ErrSessionNotFound = errors.New("local session not found")
)
