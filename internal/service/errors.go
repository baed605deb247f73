package service

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyBatch rejects an import call whose payload is not a non-empty
	// list. Checked before any database access.
	ErrEmptyBatch = errors.New("import batch is empty")

	// ErrNoSlotSelected rejects an allocation that requests neither the
	// forenoon nor the afternoon slot.
	ErrNoSlotSelected = errors.New("at least one slot type must be selected")

	// ErrMissingReversalKey rejects a deallocation without both the employee
	// id and the course code.
	ErrMissingReversalKey = errors.New("empid and courseCode are required")

	// ErrNotFound signals that a lookup or reversal matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCourse signals a single-entry course whose content
	// fingerprint already exists.
	ErrDuplicateCourse = errors.New("course already exists")

	// ErrEmpIDRequired rejects a faculty entry without an employee id.
	ErrEmpIDRequired = errors.New("empid is required")
)

// MissingColumnsError rejects a course import whose rows lack required
// columns. The whole batch fails before any row is processed.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}
