package store

import "errors"

// Error taxonomy shared by the store and the services built on it. Handlers
// pick HTTP codes off these sentinels with errors.Is; anything that doesn't
// match is treated as an internal store error.
var (
	// ErrNotFound means an id (or a parent-scoped membership lookup) did not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a unique key (course name, user email) already exists.
	ErrConflict = errors.New("duplicate record")

	// ErrInvalidInput means a required field was empty or missing after trimming.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPartialFailure means the first half of a two-step reference update
	// committed but the second half failed. The store now holds an unlinked
	// record; the error carries enough context to find it again.
	ErrPartialFailure = errors.New("partial reference update")
)
