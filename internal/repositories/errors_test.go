package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))

	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)

	// A losing concurrent insert surfaces as a unique violation and must
	// map to ErrConflict; the existence pre-check alone is not trusted.
	uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}
	assert.ErrorIs(t, mapError(uniqueViolation), ErrConflict)
	assert.ErrorIs(t, mapError(fmt.Errorf("exec: %w", uniqueViolation)), ErrConflict)

	otherPg := &pgconn.PgError{Code: "23503"}
	assert.NotErrorIs(t, mapError(otherPg), ErrConflict)

	boom := errors.New("boom")
	assert.Equal(t, boom, mapError(boom))
}
