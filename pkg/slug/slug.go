package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength caps the slug length in bytes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator replaces runs of other characters. Default is "-".
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// Lowercase controls case folding. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) { c.lowercase = enabled }
}

// Letters without a canonical decomposition into base letter plus mark.
var ligatures = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D",
)

// Make turns s into an ASCII slug of letters, digits and separators.
// Accents are stripped ("Café" becomes "cafe"); every other run of
// characters collapses into one separator, never leading or trailing.
// The result is empty when s has no letters or digits.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s = ligatures.Replace(s)
	if folded, _, err := transform.String(stripMarks(), s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if !isASCIIAlnum(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		if pendingSep {
			if cfg.maxLength > 0 && b.Len()+len(cfg.separator)+1 > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		if cfg.maxLength > 0 && b.Len()+1 > cfg.maxLength {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripMarks decomposes, drops combining marks and recomposes.
// A Transformer is stateful, hence one per call.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
