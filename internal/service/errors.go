package service

import "errors"

// Sentinel errors returned by the services. Handlers translate these into
// HTTP status codes; the services themselves never log or panic on them.
var (
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a user attempts to mutate an item
	// owned by someone else.
	ErrForbidden = errors.New("forbidden")
)
