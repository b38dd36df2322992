// Package validator provides declarative, field-level validation for the
// inputs of QR payload encoders.
//
// A Rule couples a boolean Check function with the ValidationError that is
// reported when the check fails. Rules are evaluated with Apply, which
// collects every failure into a ValidationErrors slice. ValidationErrors
// implements the error interface, so a caller can return all field problems at
// once and let the consumer decide whether to re-prompt, respond with 422, or
// abort.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("address", address),
//	    validator.Contains("address", address, "@"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// # Error Handling
//
// Use errors.As (or ExtractValidationErrors) to recover ValidationErrors from a
// wrapped error. The package is stateless and safe for concurrent use.
package validator
