package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// URL is a link; https is assumed when no scheme is given.
type URL struct {
	Raw string
}

func (URL) Kind() Kind { return KindURL }

func (u URL) Encode() (string, error) {
	return EncodeURL(u.Raw)
}

// EncodeURL prepends "https://" unless raw already starts with http:// or https://.
// Host and path are not inspected.
func EncodeURL(raw string) (string, error) {
	if err := validate(validator.Required("url", raw)); err != nil {
		return "", err
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw, nil
	}
	return "https://" + raw, nil
}
