package payload

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

var (
	// ErrValidation is returned when a required field is empty or fails a shape check.
	ErrValidation = errors.New("invalid payload")
	// ErrUnknownKind is returned when a payload kind cannot be resolved.
	ErrUnknownKind = errors.New("unknown payload kind")
)

// validate runs rules and wraps any failure with ErrValidation.
func validate(rules ...validator.Rule) error {
	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
