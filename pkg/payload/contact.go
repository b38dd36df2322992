package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Contact is a vCard 3.0 business card.
type Contact struct {
	Name         string
	Phone        string
	Email        string
	Organization string
}

func (Contact) Kind() Kind { return KindContact }

func (c Contact) Encode() (string, error) {
	return EncodeContact(c.Name, c.Phone, c.Email, c.Organization)
}

// EncodeContact builds a vCard 3.0 block with '\n' line breaks and no trailing
// newline. Optional lines appear only when set, always as TEL, EMAIL, ORG;
// some readers reject other orders. Only the phone is sanitized.
func EncodeContact(name, phone, email, organization string) (string, error) {
	if err := validate(validator.Required("name", name)); err != nil {
		return "", err
	}

	lines := make([]string, 0, 7)
	lines = append(lines, "BEGIN:VCARD", "VERSION:3.0", "FN:"+name)
	if phone != "" {
		lines = append(lines, "TEL:"+sanitizer.SanitizePhone(phone))
	}
	if email != "" {
		lines = append(lines, "EMAIL:"+email)
	}
	if organization != "" {
		lines = append(lines, "ORG:"+organization)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n"), nil
}
