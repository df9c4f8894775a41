// Package apperr defines the sentinel errors shared across the service.
package apperr

import "errors"

var (
	// ErrNotFound marks a resource that is simply absent. Expected and
	// non-fatal: a paper that was never uploaded is not an error.
	ErrNotFound = errors.New("not found")

	// ErrCorruptDocument marks a document that exists but cannot be parsed.
	// Batch operations skip the document and continue.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrMalformedIdentifier marks an identifier that does not fit the
	// subject/session/paper/variant naming scheme.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrPersistence marks an I/O fault reading or writing a tabular file.
	ErrPersistence = errors.New("persistence failure")
)
