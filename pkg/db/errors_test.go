package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestIsExclusionViolation(t *testing.T) {
	pgxErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
	if !IsExclusionViolation(fmt.Errorf("insert booking: %w", pgxErr)) {
		t.Fatal("expected pgx 23P01 to be detected through wrapping")
	}

	pqErr := &pq.Error{Code: "23P01"}
	if !IsExclusionViolation(pqErr) {
		t.Fatal("expected pq 23P01 to be detected")
	}

	if IsExclusionViolation(errors.New("some other failure")) {
		t.Fatal("plain errors must not register as exclusion violations")
	}
	if IsExclusionViolation(nil) {
		t.Fatal("nil must not register as exclusion violation")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected pgx 23505 to be detected")
	}
	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: menu_items.slug")) {
		t.Fatal("expected sqlite unique message to be detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23P01"}) {
		t.Fatal("exclusion violations are not unique violations")
	}
}
