// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	domainerrors "webmark/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures surface as the
// domain validation error so the error handler renders a 400 envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
