package validator

import "errors"

// ErrValidationFailed is returned when validation fails but no specific error is provided.
var ErrValidationFailed = errors.New("validation failed")

// Codes attached to ValidationError.Code.
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
)
