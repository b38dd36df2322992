package payload

import (
	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Phone is a number to dial.
type Phone struct {
	Number string
}

func (Phone) Kind() Kind { return KindPhone }

func (p Phone) Encode() (string, error) {
	return EncodePhone(p.Number)
}

// EncodePhone returns a tel: URI with the number reduced to the dial-string class.
func EncodePhone(raw string) (string, error) {
	if err := validate(validator.Required("phone", raw)); err != nil {
		return "", err
	}
	return "tel:" + sanitizer.SanitizePhone(raw), nil
}
