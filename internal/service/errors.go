package service

import "errors"

var (
	// ErrInvalidData is returned when a required field (username, password,
	// post title) is empty.
	ErrInvalidData = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any failed login attempt. The same
	// error covers an unknown username and a wrong password so that callers
	// cannot tell the two apart.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrNotOwner is returned when an authenticated user attempts to mutate a
	// post owned by somebody else.
	ErrNotOwner = errors.New("post belongs to another user")

	// ErrSessionInvalid is returned when a session token fails validation
	// (bad signature, wrong issuer, expired, malformed).
	ErrSessionInvalid = errors.New("session token is expired or invalid")

	// ErrSessionCreationFailed is returned when signing a new session token
	// fails.
	ErrSessionCreationFailed = errors.New("session token creation failed")
)
