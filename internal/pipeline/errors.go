package pipeline

import (
	"errors"
	"fmt"
)

// Error kinds reported to the invoker. Wrapped errors carry the offending
// path, row or column; match the kind with errors.Is.
var (
	// ErrInputNotFound means the input file is missing or unreadable.
	ErrInputNotFound = errors.New("input not found")
	// ErrSchemaMismatch means an expected column is absent from the source.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrInvalidGeometry means a row lacks parseable coordinates.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrWriteFailure means the output path could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// RowError describes why a single source row was rejected.
type RowError struct {
	Err    error
	Column string
	Row    int // 1-based data row number, header row not counted
}

func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
