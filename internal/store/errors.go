package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists in the
	// database.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup by username or id
	// produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a query or mutation targets a post id
	// that does not exist in the database.
	ErrPostNotFound = errors.New("no post was found")

	// ErrConnClosed is returned when a repository call runs against a
	// request connection that has already been released. This signals a
	// programming-contract violation: no handle may outlive its request.
	ErrConnClosed = errors.New("request connection is closed")
)
