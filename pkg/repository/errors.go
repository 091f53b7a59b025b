package repository

import "errors"

var (
	// ErrNotFound is returned by Get when the query matches no rows.
	ErrNotFound = errors.New("repository: record not found")

	// ErrEmptyRecord is returned when a write is attempted with no columns.
	ErrEmptyRecord = errors.New("repository: record has no columns")

	// ErrMissingWhere is returned when Update or Delete is called without a
	// WHERE clause. Unfiltered writes are never built.
	ErrMissingWhere = errors.New("repository: missing where clause")

	// ErrMissingTable is returned when a statement is built without a table.
	ErrMissingTable = errors.New("repository: missing table name")
)
