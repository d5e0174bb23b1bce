// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance so echo can call it on Bind targets.
type Validator struct {
	validate *playgroundvalidator.Validate
}

// New creates a Validator using struct tag validation.
func New() *Validator {
	return &Validator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct validation and maps failures to the shared
// validation error so the error handler can render them.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
