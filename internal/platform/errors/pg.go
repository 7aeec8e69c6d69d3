// Postgres (pgx) classification helpers for the platform error type

package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Common SQLSTATE codes we care about
const (
	// Class 23 :::: Integrity Constraint Violation
	SQLStateUniqueViolation     = "23505"
	SQLStateForeignKeyViolation = "23503"
	SQLStateNotNullViolation    = "23502"
	SQLStateCheckViolation      = "23514"

	// Class 40 :::: Transaction Rollback
	SQLStateSerializationFailure = "40001"
	SQLStateDeadlockDetected     = "40P01"

	// Class 57 :::: Operator Intervention
	SQLStateAdminShutdown = "57P01"
	SQLStateCrashShutdown = "57P02"

	// Class 08 :::: Connection Exception (prefix match)
	SQLClassConnection = "08"
)

// ExtractPgError returns the *pgconn.PgError in err's chain, if any
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pge *pgconn.PgError
	if stderrs.As(err, &pge) {
		return pge, true
	}
	return nil, false
}

// IsSQLState reports whether err carries the exact SQLSTATE code
func IsSQLState(err error, code string) bool {
	if pge, ok := ExtractPgError(err); ok {
		return pge.Code == code
	}
	return false
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool { return IsSQLState(err, SQLStateUniqueViolation) }

// DBErrorCode maps a Postgres error to our ErrorCode taxonomy
func DBErrorCode(err error) ErrorCode {
	pge, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeDB
	}
	switch pge.Code {
	case SQLStateUniqueViolation:
		return ErrorCodeDuplicateKey
	case SQLStateForeignKeyViolation, SQLStateNotNullViolation, SQLStateCheckViolation:
		return ErrorCodeInvalidArgument
	case SQLStateSerializationFailure, SQLStateDeadlockDetected,
		SQLStateAdminShutdown, SQLStateCrashShutdown:
		return ErrorCodeUnavailable
	}
	if len(pge.Code) >= 2 && pge.Code[:2] == SQLClassConnection {
		return ErrorCodeUnavailable
	}
	return ErrorCodeDB
}

// FromPostgres wraps a raw pgx error into a classified *Error
// The column name (when Postgres reports one) is attached as the field
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, DBErrorCode(err), msg)
	if pge, ok := ExtractPgError(err); ok && pge.ColumnName != "" {
		wrapped = WithField(wrapped, pge.ColumnName)
	}
	return wrapped
}

// IsRetryable reports whether the error is transient and a retry may succeed
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if IsCode(err, ErrorCodeUnavailable) {
		return true
	}
	pge, ok := ExtractPgError(err)
	if !ok {
		return false
	}
	switch pge.Code {
	case SQLStateSerializationFailure, SQLStateDeadlockDetected,
		SQLStateAdminShutdown, SQLStateCrashShutdown:
		return true
	}
	return len(pge.Code) >= 2 && pge.Code[:2] == SQLClassConnection
}
