package sanitizer

import "regexp"

// Anything outside the dial-string class: decimal digits of any script, '+', '-', '(' and ')'.
var nonPhoneRegex = regexp.MustCompile(`[^\p{Nd}+\-()]`)
