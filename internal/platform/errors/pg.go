package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes we care about; see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateNotNullViolation    = "23502"
	sqlstateCheckViolation      = "23514"
	sqlstateSerializationFail   = "40001"
	sqlstateDeadlockDetected    = "40P01"
	sqlstateQueryCanceled       = "57014"
	sqlstateTooManyConnections  = "53300"
	sqlstateCannotConnectNow    = "57P03"
)

// FromPostgres classifies a pgx/pgconn error into our *Error taxonomy.
// The original error is preserved as the wrapped cause
func FromPostgres(err error) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, pgx.ErrNoRows) {
		return Wrap(err, ErrorCodeNotFound, "no rows")
	}
	var pge *pgconn.PgError
	if stderrs.As(err, &pge) {
		switch pge.Code {
		case sqlstateUniqueViolation:
			return Wrapf(err, ErrorCodeDuplicateKey, "duplicate key (%s)", pge.ConstraintName)
		case sqlstateForeignKeyViolation:
			return Wrapf(err, ErrorCodeConflict, "foreign key violation (%s)", pge.ConstraintName)
		case sqlstateNotNullViolation:
			return WithField(Wrap(err, ErrorCodeValidation, "null value in required column"), pge.ColumnName)
		case sqlstateCheckViolation:
			return Wrapf(err, ErrorCodeValidation, "check constraint violation (%s)", pge.ConstraintName)
		case sqlstateSerializationFail, sqlstateDeadlockDetected:
			return Wrap(err, ErrorCodeUnavailable, "transaction conflict")
		case sqlstateQueryCanceled:
			return Wrap(err, ErrorCodeUnavailable, "query canceled")
		case sqlstateTooManyConnections, sqlstateCannotConnectNow:
			return Wrap(err, ErrorCodeUnavailable, "database unavailable")
		}
		return Wrapf(err, ErrorCodeDB, "database error (%s)", pge.Code)
	}
	return Wrap(err, ErrorCodeDB, "database error")
}

// IsRetryable reports whether a retry of the same operation may succeed.
// True for serialization failures, deadlocks, and connection pressure
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if IsCode(err, ErrorCodeUnavailable) {
		return true
	}
	var pge *pgconn.PgError
	if stderrs.As(err, &pge) {
		switch pge.Code {
		case sqlstateSerializationFail, sqlstateDeadlockDetected,
			sqlstateTooManyConnections, sqlstateCannotConnectNow:
			return true
		}
	}
	return false
}

// IsDuplicateKey reports whether err is a unique constraint violation,
// either already classified or raw from pgconn
func IsDuplicateKey(err error) bool {
	if IsCode(err, ErrorCodeDuplicateKey) {
		return true
	}
	var pge *pgconn.PgError
	return stderrs.As(err, &pge) && pge.Code == sqlstateUniqueViolation
}
