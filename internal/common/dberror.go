package common

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes we translate into failure kinds.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// DataAccessError reports a failed data-access operation.
//
// Kind is one of the sentinel errors of this package and Err is the underlying
// cause (usually a driver error). Both are reachable through errors.Is / errors.As,
// so callers can tell "the query failed" apart from "nothing matched", which is
// reported as an empty result instead of an error.
type DataAccessError struct {
	Op   string
	Kind error
	Err  error
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *DataAccessError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewDataAccessError wraps err for operation op, classifying it with ClassifyDBError.
func NewDataAccessError(op string, err error) *DataAccessError {
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return &DataAccessError{Op: op, Kind: dae.Kind, Err: dae.Err}
	}
	return &DataAccessError{Op: op, Kind: ClassifyDBError(err), Err: err}
}

// ClassifyDBError maps a driver error onto one of the failure kinds.
// Errors already carrying a kind keep it.
func ClassifyDBError(err error) error {
	for _, kind := range []error{ErrorAlreadyExists, ErrorInvalidReference, ErrorValidation} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrorAlreadyExists
		case pgForeignKeyViolation:
			return ErrorInvalidReference
		case pgNotNullViolation, pgCheckViolation:
			return ErrorValidation
		}
	}

	return ErrorInternal
}
