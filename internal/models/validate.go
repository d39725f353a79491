// Package models holds the plain records exchanged with the data-access layer.
package models

import (
	"fmt"

	"github.com/dmitrijs2005/lightbnb/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v against its `validate` struct tags. Failures wrap
// common.ErrorValidation.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}
