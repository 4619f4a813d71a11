// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single shared validate instance.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds the validator used by every request binding.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct-tag failures surface as the
// domain validation error so the error middleware renders them uniformly.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
