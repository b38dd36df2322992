package payload

import (
	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// SMS is a pre-filled text message.
type SMS struct {
	Phone         string
	Message       string
	PercentEncode bool
}

func (SMS) Kind() Kind { return KindSMS }

func (s SMS) Encode() (string, error) {
	var opts []Option
	if s.PercentEncode {
		opts = append(opts, WithPercentEncoding())
	}
	return EncodeSMS(s.Phone, s.Message, opts...)
}

// EncodeSMS builds smsto:<phone> or smsto:<phone>:<message>. The phone is
// sanitized; the message is embedded raw unless WithPercentEncoding is set.
func EncodeSMS(phone, message string, opts ...Option) (string, error) {
	if err := validate(validator.Required("phone", phone)); err != nil {
		return "", err
	}

	data := "smsto:" + sanitizer.SanitizePhone(phone)
	if message == "" {
		return data, nil
	}
	return data + ":" + newOptions(opts).text(message), nil
}
