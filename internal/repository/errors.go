package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrInsufficientSlots is returned when a guarded slot decrement matches
	// no course row: the course does not exist or a requested counter is
	// already at zero.
	ErrInsufficientSlots = errors.New("insufficient slots")

	// ErrNoMatch is returned by deletion paths when none of the given keys
	// resolve to existing rows. The surrounding transaction is rolled back.
	ErrNoMatch = errors.New("no matching rows")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation, e.g. a duplicate fingerprint or employee id on a plain insert.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
