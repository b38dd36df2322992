package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
)

func TestSanitizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps allowed characters untouched",
			input:    "+1(234)567-8900",
			expected: "+1(234)567-8900",
		},
		{
			name:     "removes spaces and letters but keeps trailing digits",
			input:    "+1 (234) 567-8900 ext2",
			expected: "+1(234)567-89002",
		},
		{
			name:     "removes dots and slashes",
			input:    "555.123/4567",
			expected: "5551234567",
		},
		{
			name:     "keeps digits of other scripts",
			input:    "٣٤٥12",
			expected: "٣٤٥12",
		},
		{
			name:     "keeps fullwidth digits and drops fullwidth space",
			input:    "+٠١٢ １２３",
			expected: "+٠١٢１２３",
		},
		{
			name:     "drops digit-like runes that are not decimal digits",
			input:    "1²3½Ⅷ",
			expected: "13",
		},
		{
			name:     "preserves order of repeated symbols",
			input:    "--++()",
			expected: "--++()",
		},
		{
			name:     "returns empty when nothing is allowed",
			input:    "call me",
			expected: "",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizePhone(tt.input))
		})
	}
}
