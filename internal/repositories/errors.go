package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound means no row matched an address- or id-scoped operation.
	ErrNotFound = errors.New("not found")
	// ErrConflict means an insert hit the unique wallet_address constraint.
	ErrConflict = errors.New("already exists")
)

const pgUniqueViolation = "23505"

// mapError folds pgx sentinel and constraint errors into the repository
// error taxonomy. The unique constraint, not the existence pre-check, is
// what actually guarantees one row per address under concurrent signups.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrConflict
	}
	return err
}
