package payload

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a payload type.
type Kind uint8

// Values start at 1 so a Kind doubles as its menu number.
const (
	KindWiFi Kind = iota + 1
	KindURL
	KindPhone
	KindEmail
	KindSMS
	KindContact
	KindText
)

var kindNames = map[Kind]string{
	KindWiFi:    "wifi",
	KindURL:     "url",
	KindPhone:   "phone",
	KindEmail:   "email",
	KindSMS:     "sms",
	KindContact: "contact",
	KindText:    "text",
}

var kindLabels = map[Kind]string{
	KindWiFi:    "Wi-Fi Credentials",
	KindURL:     "URL (Website, Facebook, Instagram, etc.)",
	KindPhone:   "Phone Number",
	KindEmail:   "Email Address",
	KindSMS:     "SMS (Text Message)",
	KindContact: "Contact Information (vCard)",
	KindText:    "Plain Text",
}

// Kinds returns every kind in menu order.
func Kinds() []Kind {
	return []Kind{KindWiFi, KindURL, KindPhone, KindEmail, KindSMS, KindContact, KindText}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Label is the human readable menu entry.
func (k Kind) Label() string {
	return kindLabels[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// FilePrefix is the base name used for rendered artifacts, e.g. "wifi_qr".
func (k Kind) FilePrefix() string {
	return k.String() + "_qr"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a kind from its name ("wifi", "SMS") or its menu number ("1".."7").
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if k := Kind(n); n > 0 && n <= 255 && k.Valid() {
			return k, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Payload is a validated-on-encode QR payload.
type Payload interface {
	Kind() Kind
	Encode() (string, error)
}

// Encode is a convenience that dispatches to p.Encode.
func Encode(p Payload) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: nil payload", ErrUnknownKind)
	}
	return p.Encode()
}
