// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs via their `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the validation
// error so the error handler renders a 400 with field details.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
