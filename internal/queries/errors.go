package queries

import "errors"

var (
	// ErrEmptyQuery rejects queries whose text is empty after trimming.
	// No Query record is created for these.
	ErrEmptyQuery = errors.New("query is required")

	// ErrNotFound is returned when a query does not exist.
	ErrNotFound = errors.New("not found")

	// ErrProcessing signals an unexpected pipeline failure. The query is
	// persisted as failed before this surfaces to the caller.
	ErrProcessing = errors.New("query processing failed")
)
