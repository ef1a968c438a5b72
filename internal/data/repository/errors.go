// Package repository defines sentinel error values shared across the
// repositories so that services and handlers can distinguish failure
// scenarios with errors.Is instead of string matching.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned on uniqueness violations: a duplicate
// booking, a duplicate price row, or a duplicate showtime slot.
var ErrConflict = errors.New("conflict")

// ErrRelationshipConflict is returned when a delete is blocked by
// dependent records, e.g. an actor still linked to plays.
var ErrRelationshipConflict = errors.New("relationship conflict")

// isUniqueViolation reports whether err is a Postgres unique
// constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a Postgres foreign key
// violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
