package prompt

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/sanitizer"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

var (
	clean    = sanitizer.Compose(sanitizer.Trim)
	keyword  = sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
	yesWords = map[string]bool{"y": true, "yes": true, "true": true, "1": true}
	openAuth = map[string]bool{"none": true, "nopass": true, "no": true, "": true}
)

// question binds one prompt to a Fields member. A non-empty required message
// is shown when the trimmed answer is empty or fails check.
type question struct {
	label    string
	target   func(*payload.Fields) *string
	required string
	check    func(string) bool
}

func hasAt(s string) bool { return strings.Contains(s, "@") }

var questions = map[payload.Kind][]question{
	payload.KindURL: {
		{label: "Enter URL (e.g., https://www.facebook.com/yourpage): ", target: func(f *payload.Fields) *string { return &f.URL }, required: "URL required."},
	},
	payload.KindPhone: {
		{label: "Enter phone number (e.g., +1234567890): ", target: func(f *payload.Fields) *string { return &f.Phone }, required: "Phone number required."},
	},
	payload.KindEmail: {
		{label: "Enter email address: ", target: func(f *payload.Fields) *string { return &f.Email }, required: "Invalid email address.", check: hasAt},
		{label: "Email subject (optional): ", target: func(f *payload.Fields) *string { return &f.Subject }},
		{label: "Email body/message (optional): ", target: func(f *payload.Fields) *string { return &f.Body }},
	},
	payload.KindSMS: {
		{label: "Enter phone number: ", target: func(f *payload.Fields) *string { return &f.Phone }, required: "Phone number required."},
		{label: "Enter message (optional): ", target: func(f *payload.Fields) *string { return &f.Message }},
	},
	payload.KindContact: {
		{label: "Full name: ", target: func(f *payload.Fields) *string { return &f.Name }, required: "Name required."},
		{label: "Phone number (optional): ", target: func(f *payload.Fields) *string { return &f.Phone }},
		{label: "Email address (optional): ", target: func(f *payload.Fields) *string { return &f.Email }},
		{label: "Organization (optional): ", target: func(f *payload.Fields) *string { return &f.Organization }},
	},
	payload.KindText: {
		{label: "Enter text: ", target: func(f *payload.Fields) *string { return &f.Text }, required: "Text required."},
	},
}

var headings = map[payload.Kind]string{
	payload.KindWiFi:    "Wi-Fi QR Code Generator",
	payload.KindURL:     "URL QR Code Generator",
	payload.KindPhone:   "Phone Number QR Code Generator",
	payload.KindEmail:   "Email QR Code Generator",
	payload.KindSMS:     "SMS/Text Message QR Code Generator",
	payload.KindContact: "Contact Information (vCard) QR Code Generator",
	payload.KindText:    "Plain Text QR Code Generator",
}

// collect asks the questions for kind. An empty required answer stops the
// questions early with a validator.ValidationErrors.
func (p *Prompter) collect(kind payload.Kind) (payload.Fields, error) {
	p.printf("\n--- %s ---\n", headings[kind])

	if kind == payload.KindWiFi {
		return p.collectWiFi()
	}

	var f payload.Fields
	for _, q := range questions[kind] {
		answer, err := p.ask(q.label)
		if err != nil {
			return f, err
		}
		answer = clean(answer)
		if q.required != "" && (answer == "" || (q.check != nil && !q.check(answer))) {
			return f, requiredError(q.required)
		}
		*q.target(&f) = answer
	}
	return f, nil
}

func (p *Prompter) collectWiFi() (payload.Fields, error) {
	var f payload.Fields

	ssid, err := p.ask("SSID (network name): ")
	if err != nil {
		return f, err
	}
	if f.SSID = clean(ssid); f.SSID == "" {
		return f, requiredError("SSID required.")
	}

	p.printf("Authentication type: [WPA] / [WEP] / [NONE]\n")
	auth, err := p.ask("Auth (default WPA): ")
	if err != nil {
		return f, err
	}
	if f.Auth = clean(auth); f.Auth == "" {
		f.Auth = string(payload.AuthWPA)
	}

	if !openAuth[keyword(f.Auth)] {
		// Taken verbatim: leading or trailing spaces may be part of the password.
		if f.Password, err = p.ask("Password: "); err != nil {
			return f, err
		}
	}

	hidden, err := p.ask("Hidden SSID? (y/N): ")
	if err != nil {
		return f, err
	}
	f.Hidden = yesWords[keyword(hidden)]

	return f, nil
}

func requiredError(message string) error {
	return validator.ValidationErrors{{Field: "input", Message: message, Code: validator.CodeRequired}}
}
