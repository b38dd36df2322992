// Package sanitizer provides small, stateless helpers for cleaning user input
// before it is embedded into QR payloads.
//
// The functions are grouped conceptually into two areas:
//
//   - Strings – trimming, case conversion and whitespace normalisation of
//     free-form answers collected from prompts, manifests or HTTP requests.
//
//   - Format – character-class filters for structured fields such as phone
//     numbers.
//
// For convenience the higher-order Apply and Compose helpers allow the
// creation of sanitisation pipelines:
//
//	answer := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	answer("  YES \n") // "yes"
//
// # Usage
//
//	import "github.com/dmitrymomot/qrkit/pkg/sanitizer"
//
//	phone := sanitizer.SanitizePhone("+1 (234) 567-8900")
//	// phone == "+1(234)567-8900"
//
// # Error handling
//
// None of the helpers returns an error. They always produce a result, which
// may be an empty string when nothing survives filtering.
package sanitizer
