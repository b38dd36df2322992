package generator

import "errors"

var (
	// ErrValidation means the payload fields were rejected; collect them again.
	ErrValidation = errors.New("payload validation failed")
	// ErrRender means the renderer refused the content, usually because it is too long.
	ErrRender = errors.New("qr code rendering failed")
	// ErrStorage means the image could not be written; retrying may help.
	ErrStorage = errors.New("qr code storage failed")
	// ErrInvalidName is joined with ErrValidation for unusable output names.
	ErrInvalidName = errors.New("invalid output name")
)
