package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()
	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()

		result, err := qrcode.Generate("", 256)

		require.Error(t, err, "Generate should return an error with empty content")
		require.Nil(t, result, "Generate should not return PNG data")
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent))
	})

	t.Run("returns error when content is whitespace only", func(t *testing.T) {
		t.Parallel()

		result, err := qrcode.Generate("   \t\n", 256)

		require.Error(t, err)
		require.Nil(t, result)
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent))
	})

	t.Run("generates wifi payload at requested size", func(t *testing.T) {
		t.Parallel()
		size := 256

		result, err := qrcode.Generate("WIFI:T:WPA;S:Home;P:pw;H:false;;", size)
		require.NoError(t, err)
		require.NotEmpty(t, result)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err, "Result should be a valid PNG image")
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	})

	t.Run("uses default size when size is zero or negative", func(t *testing.T) {
		t.Parallel()

		for _, size := range []int{0, -10} {
			result, err := qrcode.Generate("https://example.com", size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(result))
			require.NoError(t, err)
			assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx(), "Image width should be default 200px")
			assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dy(), "Image height should be default 200px")
		}
	})

	t.Run("multi-line vcard payload", func(t *testing.T) {
		t.Parallel()

		result, err := qrcode.Generate("BEGIN:VCARD\nVERSION:3.0\nFN:Jane\nEND:VCARD", 0, qrcode.WithoutBorder())
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
	})

	t.Run("content too long for highest recovery level", func(t *testing.T) {
		t.Parallel()
		content := strings.Repeat("a", 3000)

		result, err := qrcode.Generate(content, 0)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, qrcode.ErrorFailedToGenerateQRCode))
	})

	t.Run("lower recovery level fits more content", func(t *testing.T) {
		t.Parallel()
		content := strings.Repeat("a", 2000)

		_, err := qrcode.Generate(content, 0)
		require.Error(t, err)

		result, err := qrcode.Generate(content, 0, qrcode.WithRecoveryLevel(qrcode.Low))
		require.NoError(t, err)
		assert.NotEmpty(t, result)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()
	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()

		result, err := qrcode.GenerateBase64Image("", 256)

		require.Error(t, err)
		require.Empty(t, result)
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent))
	})

	t.Run("can decode base64 content to valid PNG", func(t *testing.T) {
		t.Parallel()
		size := 256

		result, err := qrcode.GenerateBase64Image("mailto:a@b.com?subject=Hi", size)
		require.NoError(t, err)

		expectedPrefix := "data:image/png;base64,"
		require.True(t, strings.HasPrefix(result, expectedPrefix),
			"Result should start with the data URI prefix")

		decodedBytes, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result, expectedPrefix))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(decodedBytes))
		require.NoError(t, err, "Decoded content should be a valid PNG")
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	})

	t.Run("data uri of rendered bytes matches", func(t *testing.T) {
		t.Parallel()
		raw, err := qrcode.Generate("tel:+1234", 128)
		require.NoError(t, err)
		uri, err := qrcode.GenerateBase64Image("tel:+1234", 128)
		require.NoError(t, err)
		assert.Equal(t, uri, qrcode.DataURI(raw))
	})
}

func TestASCII(t *testing.T) {
	t.Parallel()

	t.Run("renders multi-line block art", func(t *testing.T) {
		t.Parallel()

		art, err := qrcode.ASCII("tel:+15550100")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
		assert.Greater(t, len(lines), 10)
		assert.NotEqual(t, art, mustASCII(t, "tel:+15550100", qrcode.WithInverseColors()))
	})

	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()

		art, err := qrcode.ASCII(" ")
		assert.Empty(t, art)
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent))
	})
}

func mustASCII(t *testing.T, content string, opts ...qrcode.Option) string {
	t.Helper()
	art, err := qrcode.ASCII(content, opts...)
	require.NoError(t, err)
	return art
}

func TestParseRecoveryLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected qrcode.RecoveryLevel
	}{
		{input: "low", expected: qrcode.Low},
		{input: "Medium", expected: qrcode.Medium},
		{input: "HIGH", expected: qrcode.High},
		{input: "highest", expected: qrcode.Highest},
		{input: " h ", expected: qrcode.Highest},
	}

	for _, tt := range tests {
		level, err := qrcode.ParseRecoveryLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, level, tt.input)
	}

	_, err := qrcode.ParseRecoveryLevel("ultra")
	assert.True(t, errors.Is(err, qrcode.ErrInvalidRecoveryLevel))
}
