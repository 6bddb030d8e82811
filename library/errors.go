package library

import "errors"

// Error kinds reported by catalog operations and the store. They are
// reported outcomes rather than process faults; match with errors.Is.
var (
	// ErrValidation indicates a record was constructed from blank input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates a user or book id did not resolve.
	ErrNotFound = errors.New("not found")
	// ErrPolicy indicates a borrow or return rule rejected the operation.
	ErrPolicy = errors.New("policy violation")
	// ErrPersistence indicates the on-disk store could not be read or written.
	ErrPersistence = errors.New("persistence failure")
)
