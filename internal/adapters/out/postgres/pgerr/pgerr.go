// Package pgerr maps PostgreSQL failures onto the error kinds of internal/pkg/errs.
//
// Repositories handle the outcomes they can name themselves (a missing row, a
// foreign key pointing at a missing product) and pass everything else through
// Translate, so no raw driver error leaves the storage adapter.
package pgerr

import (
	"errors"
	"strings"

	"ordertracking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this package reacts to.
const (
	NotNullViolation     = "23502"
	ForeignKeyViolation  = "23503"
	UniqueViolation      = "23505"
	CheckViolation       = "23514"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	LockNotAvailable     = "55P03"
	QueryCanceled        = "57014"
	NumericOutOfRange    = "22003"
	DataCorrupted        = "XX001"
	IndexCorrupted       = "XX002"
)

// Code returns the SQLSTATE of err, or "" when err is not a server error.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Constraint returns the name of the violated constraint, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

// IsDataException reports class 22 errors: a value the column cannot hold,
// such as an amount wider than its NUMERIC precision.
func IsDataException(err error) bool {
	return strings.HasPrefix(Code(err), "22")
}

// IsBusy reports transient contention: lock timeouts, serialization failures,
// deadlocks and statements cancelled by a timeout.
func IsBusy(err error) bool {
	switch Code(err) {
	case SerializationFailure, DeadlockDetected, LockNotAvailable, QueryCanceled:
		return true
	}
	return false
}

// IsCorruption reports data corruption and system (class 58) errors.
func IsCorruption(err error) bool {
	code := Code(err)
	return code == DataCorrupted || code == IndexCorrupted || strings.HasPrefix(code, "58")
}

// Translate classifies err for operation. Errors that already carry an errs kind
// are returned unchanged; constraint violations and data exceptions become
// validation errors;
// contention becomes StoreBusy; anything else is a StoreCorruption.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindUnknown {
		return err
	}

	switch Code(err) {
	case UniqueViolation, CheckViolation, NotNullViolation:
		return errs.NewValueIsInvalidErrorWithCause(operation, err)
	case ForeignKeyViolation:
		return errs.NewReferentialIntegrityErrorWithCause(operation, Constraint(err), err)
	}

	if IsDataException(err) {
		return errs.NewValueIsInvalidErrorWithCause(operation, err)
	}
	if IsBusy(err) {
		return errs.NewStoreBusyError(operation, err)
	}
	return errs.NewStoreCorruptionError(operation, err)
}
