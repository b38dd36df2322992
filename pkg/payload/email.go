package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Email is a pre-filled message.
type Email struct {
	Address       string
	Subject       string
	Body          string
	PercentEncode bool
}

func (Email) Kind() Kind { return KindEmail }

func (e Email) Encode() (string, error) {
	var opts []Option
	if e.PercentEncode {
		opts = append(opts, WithPercentEncoding())
	}
	return EncodeEmail(e.Address, e.Subject, e.Body, opts...)
}

// EncodeEmail builds a mailto: URI. The subject opens the query string; a body
// follows with '&' after a subject, or opens the query with '?' on its own.
// The address is taken as is; subject and body are embedded raw unless
// WithPercentEncoding is set.
func EncodeEmail(address, subject, body string, opts ...Option) (string, error) {
	if err := validate(
		validator.Required("address", address),
		validator.Contains("address", address, "@"),
	); err != nil {
		return "", err
	}

	o := newOptions(opts)

	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(address)
	switch {
	case subject != "":
		b.WriteString("?subject=")
		b.WriteString(o.text(subject))
		if body != "" {
			b.WriteString("&body=")
			b.WriteString(o.text(body))
		}
	case body != "":
		b.WriteString("?body=")
		b.WriteString(o.text(body))
	}
	return b.String(), nil
}
