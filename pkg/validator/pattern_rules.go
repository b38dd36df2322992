package validator

import (
	"fmt"
	"strings"
)

// Contains validates that value includes substr. Empty values fail too, so it
// can stand alone as a basic shape check.
func Contains(field, value, substr string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && strings.Contains(value, substr)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain %q", substr),
			Code:    CodeInvalidFormat,
		},
	}
}
