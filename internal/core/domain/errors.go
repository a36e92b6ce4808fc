package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates no document reader handles the file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoHeadnotes indicates a document decoded cleanly but contained
	// no paragraph matching the headnote heading pattern.
	ErrNoHeadnotes = errors.New("no headnotes found")

	// ErrStoreUnavailable indicates persistence was requested without a store.
	ErrStoreUnavailable = errors.New("headnote store unavailable")
)
