package qrcode

import "errors"

// Error variables for QR code generation
var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrorFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidRecoveryLevel is returned for unknown recovery level names.
	ErrInvalidRecoveryLevel = errors.New("invalid recovery level")
)
