package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
// The sqlite message check keeps local-dev behaviour aligned with postgres.
func IsUniqueViolation(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == pgUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsExclusionViolation reports whether err is a Postgres exclusion constraint
// violation, the storage-level signal for an overlapping booking.
func IsExclusionViolation(err error) bool {
	code, ok := sqlState(err)
	return ok && code == pgExclusionViolation
}

func sqlState(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}
