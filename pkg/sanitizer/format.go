package sanitizer

// SanitizePhone keeps only decimal digits (Unicode Nd, so Arabic-Indic and
// fullwidth digits survive as is) and the characters '+', '-', '(' and ')'.
// Order is preserved and nothing is inserted; the result is not checked for
// being a plausible number and may be empty.
func SanitizePhone(phone string) string {
	return nonPhoneRegex.ReplaceAllString(phone, "")
}
