// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "cardmatch/internal/domain/errors"
)

// CustomValidator wraps a validator instance for Echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator with struct-tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures surface as
// operational bad-request errors.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}
	return nil
}
