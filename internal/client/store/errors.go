package store

import "errors"

var (
	// ErrValidation indicates that a required quote field is blank
	ErrValidation = errors.New("validation failed")

	// ErrPersistence indicates that the durable mirror rejected a write.
	// The in-memory state is left as it was before the failed call.
	ErrPersistence = errors.New("persistence failed")
)
