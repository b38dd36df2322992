package payload

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// AuthType is the Wi-Fi authentication token written to the T field.
type AuthType string

const (
	AuthWPA    AuthType = "WPA"
	AuthWEP    AuthType = "WEP"
	AuthNoPass AuthType = "nopass"
)

// ParseAuthType normalizes a user supplied auth token. NOPASS, NONE and the
// empty string mean an open network; any unrecognized token falls back to WPA.
func ParseAuthType(raw string) AuthType {
	switch sanitizer.ToUpper(sanitizer.Trim(raw)) {
	case "WEP":
		return AuthWEP
	case "NOPASS", "NONE", "":
		return AuthNoPass
	default:
		return AuthWPA
	}
}

// WiFi holds network credentials.
type WiFi struct {
	SSID     string
	Auth     string
	Password string
	Hidden   bool
}

func (WiFi) Kind() Kind { return KindWiFi }

func (w WiFi) Encode() (string, error) {
	return EncodeWiFi(w.SSID, w.Auth, w.Password, w.Hidden)
}

// EncodeWiFi builds a WIFI: provisioning string. Fields are always written in
// the order T, S, P, H; the P field is omitted for open networks even when a
// password is given.
func EncodeWiFi(ssid, auth, password string, hidden bool) (string, error) {
	if err := validate(validator.Required("ssid", ssid)); err != nil {
		return "", err
	}

	authType := ParseAuthType(auth)

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(string(authType))
	b.WriteString(";S:")
	b.WriteString(EscapeWiFi(ssid))
	if authType != AuthNoPass {
		b.WriteString(";P:")
		b.WriteString(EscapeWiFi(password))
	}
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(hidden))
	b.WriteString(";;")
	return b.String(), nil
}
