package payload

import (
	"fmt"

	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
)

// Fields is the flat union of every payload's inputs, as collected by forms,
// manifests and HTTP requests. Phone feeds the phone, SMS and contact payloads;
// Email feeds the email address and the contact card.
type Fields struct {
	SSID          string `json:"ssid,omitempty" yaml:"ssid,omitempty"`
	Auth          string `json:"auth,omitempty" yaml:"auth,omitempty"`
	Password      string `json:"password,omitempty" yaml:"password,omitempty"`
	Hidden        bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	Phone         string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email         string `json:"email,omitempty" yaml:"email,omitempty"`
	Subject       string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Body          string `json:"body,omitempty" yaml:"body,omitempty"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Organization  string `json:"organization,omitempty" yaml:"organization,omitempty"`
	Text          string `json:"text,omitempty" yaml:"text,omitempty"`
	PercentEncode bool   `json:"percent_encode,omitempty" yaml:"percent_encode,omitempty"`
}

// Trimmed returns a copy with surrounding whitespace removed from every text
// field except Password, which is taken verbatim.
func (f Fields) Trimmed() Fields {
	trim := sanitizer.Trim
	f.SSID = trim(f.SSID)
	f.Auth = trim(f.Auth)
	f.URL = trim(f.URL)
	f.Phone = trim(f.Phone)
	f.Email = trim(f.Email)
	f.Subject = trim(f.Subject)
	f.Body = trim(f.Body)
	f.Message = trim(f.Message)
	f.Name = trim(f.Name)
	f.Organization = trim(f.Organization)
	f.Text = trim(f.Text)
	return f
}

// Build creates the payload of the given kind from f. It does not validate;
// validation happens on Encode.
func Build(kind Kind, f Fields) (Payload, error) {
	switch kind {
	case KindWiFi:
		return WiFi{SSID: f.SSID, Auth: f.Auth, Password: f.Password, Hidden: f.Hidden}, nil
	case KindURL:
		return URL{Raw: f.URL}, nil
	case KindPhone:
		return Phone{Number: f.Phone}, nil
	case KindEmail:
		return Email{Address: f.Email, Subject: f.Subject, Body: f.Body, PercentEncode: f.PercentEncode}, nil
	case KindSMS:
		return SMS{Phone: f.Phone, Message: f.Message, PercentEncode: f.PercentEncode}, nil
	case KindContact:
		return Contact{Name: f.Name, Phone: f.Phone, Email: f.Email, Organization: f.Organization}, nil
	case KindText:
		return Text{Raw: f.Text}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
