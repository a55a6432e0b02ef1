package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user cannot be created or
	// renamed because another user already holds the same name.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match at least
	// one user record produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")
)
