// Package common defines the sentinel errors shared by the repositories and the
// data-access service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Failure kinds carried by DataAccessError.
	ErrorInternal         = errors.New("internal error")
	ErrorAlreadyExists    = errors.New("already exists")
	ErrorInvalidReference = errors.New("invalid reference")
	ErrorValidation       = errors.New("validation error")
)
