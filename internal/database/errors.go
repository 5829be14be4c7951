package database

import "errors"

var (
	// ErrNotFound is returned by every repository when no record matches
	// the given id. Controllers translate it into a 404 envelope.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user create violates the
	// email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already in use")
)
