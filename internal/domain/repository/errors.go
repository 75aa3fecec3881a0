package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is not
	// visible to the requesting owner. The two cases are deliberately
	// indistinguishable so callers cannot probe for records they do
	// not own.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateTrackingID is returned when a create or update would
	// violate global tracking-id uniqueness.
	ErrDuplicateTrackingID = errors.New("tracking id already exists")

	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
