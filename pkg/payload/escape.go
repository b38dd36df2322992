package payload

import (
	"net/url"
	"strings"
)

// wifiEscaper applies \ → \\, ; → \;, , → \,, : → \: and " → \".
// A Replacer scans the input once, which gives the same result as applying the
// substitutions in that order: the backslash goes first, so backslashes added
// by later substitutions are never escaped again.
var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
	`"`, `\"`,
)

// EscapeWiFi escapes the characters reserved by the WIFI: format.
// It is not idempotent: escape raw input exactly once.
func EscapeWiFi(value string) string {
	return wifiEscaper.Replace(value)
}

// componentUnescaper turns url.QueryEscape output into encodeURIComponent
// output: spaces as %20, and ! ' ( ) * left literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// percentEncode encodes like JavaScript's encodeURIComponent: everything but
// ASCII letters, digits and - _ . ! ~ * ' ( ) becomes UTF-8 %XX.
func percentEncode(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
