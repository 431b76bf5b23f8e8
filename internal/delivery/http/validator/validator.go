// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "tourdesk/internal/domain/errors"

	govalidator "github.com/go-playground/validator/v10"
)

// Validator validates request payloads against their struct tags.
type Validator struct {
	validate *govalidator.Validate
}

// New builds a Validator using the struct field tags as the source of rules.
func New() *Validator {
	return &Validator{validate: govalidator.New(govalidator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Rule violations surface as a
// validation error carrying the offending fields in the details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
