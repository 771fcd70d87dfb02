package errors

import (
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPostgresNoRows(t *testing.T) {
	err := FromPostgres(pgx.ErrNoRows)
	if !IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("code = %d, want not found", CodeOf(err))
	}
	if !stderrs.Is(err, pgx.ErrNoRows) {
		t.Fatal("cause lost")
	}
}

func TestFromPostgresClassification(t *testing.T) {
	cases := []struct {
		sqlstate string
		code     ErrorCode
	}{
		{sqlstateUniqueViolation, ErrorCodeDuplicateKey},
		{sqlstateForeignKeyViolation, ErrorCodeConflict},
		{sqlstateNotNullViolation, ErrorCodeValidation},
		{sqlstateCheckViolation, ErrorCodeValidation},
		{sqlstateSerializationFail, ErrorCodeUnavailable},
		{sqlstateDeadlockDetected, ErrorCodeUnavailable},
		{sqlstateQueryCanceled, ErrorCodeUnavailable},
		{sqlstateTooManyConnections, ErrorCodeUnavailable},
		{"22P02", ErrorCodeDB}, // invalid_text_representation falls to generic DB
	}
	for _, c := range cases {
		raw := &pgconn.PgError{Code: c.sqlstate, ConstraintName: "cause_listings_pkey"}
		err := FromPostgres(raw)
		if !IsCode(err, c.code) {
			t.Errorf("sqlstate %s: code = %d, want %d", c.sqlstate, CodeOf(err), c.code)
		}
		var pge *pgconn.PgError
		if !stderrs.As(err, &pge) {
			t.Errorf("sqlstate %s: pgconn cause lost", c.sqlstate)
		}
	}
}

func TestFromPostgresNotNullCarriesColumn(t *testing.T) {
	err := FromPostgres(&pgconn.PgError{Code: sqlstateNotNullViolation, ColumnName: "status"})
	e, ok := As(err)
	if !ok || e.Field() != "status" {
		t.Fatalf("field = %q, want status", e.Field())
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&pgconn.PgError{Code: sqlstateDeadlockDetected}) {
		t.Fatal("deadlock must be retryable")
	}
	if !IsRetryable(FromPostgres(&pgconn.PgError{Code: sqlstateSerializationFail})) {
		t.Fatal("classified serialization failure must be retryable")
	}
	if IsRetryable(&pgconn.PgError{Code: sqlstateUniqueViolation}) {
		t.Fatal("duplicate key must not be retryable")
	}
	if IsRetryable(nil) {
		t.Fatal("nil must not be retryable")
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !IsDuplicateKey(&pgconn.PgError{Code: sqlstateUniqueViolation}) {
		t.Fatal("raw 23505 should count")
	}
	if !IsDuplicateKey(FromPostgres(&pgconn.PgError{Code: sqlstateUniqueViolation})) {
		t.Fatal("classified 23505 should count")
	}
	if IsDuplicateKey(stderrs.New("nope")) {
		t.Fatal("foreign error should not count")
	}
}
