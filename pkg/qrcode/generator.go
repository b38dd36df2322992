package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length in pixels used when no size is specified.
const DefaultSize = 200

// RecoveryLevel is the error-correction level; higher levels survive more
// damage at the cost of capacity.
type RecoveryLevel = skipqrcode.RecoveryLevel

const (
	Low     = skipqrcode.Low     // 7% recovery
	Medium  = skipqrcode.Medium  // 15% recovery
	High    = skipqrcode.High    // 25% recovery
	Highest = skipqrcode.Highest // 30% recovery
)

// ParseRecoveryLevel maps "low", "medium", "high" and "highest" (any case) to a level.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "m":
		return Medium, nil
	case "high", "q":
		return High, nil
	case "highest", "h":
		return Highest, nil
	default:
		return Highest, fmt.Errorf("%w: %q", ErrInvalidRecoveryLevel, s)
	}
}

// Option configures rendering.
type Option func(*options)

type options struct {
	level         RecoveryLevel
	disableBorder bool
	inverse       bool
}

func defaultOptions() options {
	return options{level: Highest}
}

// WithRecoveryLevel overrides the default Highest level.
func WithRecoveryLevel(level RecoveryLevel) Option {
	return func(o *options) { o.level = level }
}

// WithoutBorder drops the 4-module quiet zone.
func WithoutBorder() Option {
	return func(o *options) { o.disableBorder = true }
}

// WithInverseColors swaps dark and light blocks in terminal art, for light-on-dark terminals.
func WithInverseColors() Option {
	return func(o *options) { o.inverse = true }
}

func newCode(content string, opts []Option) (*skipqrcode.QRCode, options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if strings.TrimSpace(content) == "" {
		return nil, o, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, o.level)
	if err != nil {
		return nil, o, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	q.DisableBorder = o.disableBorder
	return q, o, nil
}

// Generate creates a QR code image in PNG format with the given content.
// A size of zero or less falls back to DefaultSize.
func Generate(content string, size int, opts ...Option) ([]byte, error) {
	q, _, err := newCode(content, opts)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image creates a data URI holding the PNG rendering of content.
//
// Usage in an HTML template:
//
//	<img src="{{.QrCode}}">
func GenerateBase64Image(content string, size int, opts ...Option) (string, error) {
	png, err := Generate(content, size, opts...)
	if err != nil {
		return "", err
	}
	return DataURI(png), nil
}

// DataURI wraps already rendered PNG bytes in a data URI.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// ASCII renders content with Unicode half blocks, two modules per character
// row, so the code stays roughly square in a terminal.
func ASCII(content string, opts ...Option) (string, error) {
	q, o, err := newCode(content, opts)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(o.inverse), nil
}
