package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested study does not exist.
	// A lookup miss is a routine soft signal, not a fault.
	ErrNotFound = errors.New("study not found")

	// ErrDuplicateID indicates a study with the same id is already stored.
	// The failed add leaves the collection unchanged.
	ErrDuplicateID = errors.New("duplicate study id")

	// ErrEmptyCollection indicates a statistic that requires at least one
	// study was requested on an empty collection.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrUnsupportedFormat indicates an unknown citation or export format.
	// Formats never fall back to a default.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
