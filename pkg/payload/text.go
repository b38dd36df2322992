package payload

import "github.com/dmitrymomot/qrkit/pkg/validator"

// Text is free-form content.
type Text struct {
	Raw string
}

func (Text) Kind() Kind { return KindText }

func (t Text) Encode() (string, error) {
	return EncodeText(t.Raw)
}

// EncodeText returns raw unchanged.
func EncodeText(raw string) (string, error) {
	if err := validate(validator.Required("text", raw)); err != nil {
		return "", err
	}
	return raw, nil
}
