package payload_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/payload"
)

func TestEncodeContact(t *testing.T) {
	t.Parallel()

	t.Run("all fields in fixed order", func(t *testing.T) {
		t.Parallel()
		got, err := payload.EncodeContact("Jane", "555-1234", "j@x.com", "Acme")
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nTEL:555-1234\nEMAIL:j@x.com\nORG:Acme\nEND:VCARD", got)
		assert.Len(t, strings.Split(got, "\n"), 7)
	})

	t.Run("name only", func(t *testing.T) {
		t.Parallel()
		got, err := payload.EncodeContact("Jane", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nEND:VCARD", got)
	})

	t.Run("phone is sanitized", func(t *testing.T) {
		t.Parallel()
		got, err := payload.EncodeContact("Jane", "+1 (555) 123.4567", "", "")
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nTEL:+1(555)1234567\nEND:VCARD", got)
	})

	t.Run("skipped lines keep relative order", func(t *testing.T) {
		t.Parallel()
		got, err := payload.EncodeContact("Jane Doe", "", "j@x.com", "Acme; Inc")
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nEMAIL:j@x.com\nORG:Acme; Inc\nEND:VCARD", got)
	})

	t.Run("name is required", func(t *testing.T) {
		t.Parallel()
		got, err := payload.EncodeContact(" ", "555", "j@x.com", "Acme")
		require.Error(t, err)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, payload.ErrValidation))
	})
}
