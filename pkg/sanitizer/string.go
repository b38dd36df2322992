package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase using full Unicode case mapping,
// so "ß" becomes "SS" rather than staying unchanged.
// A Caser is stateful, hence one per call.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// TrimToLower trims whitespace and lowercases in one step.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
