// Package payload turns structured user data into the text payloads that QR
// scanners on phones understand: Wi-Fi provisioning strings, vCard 3.0
// contacts, and tel:, smsto: and mailto: URIs, plus plain URLs and text.
//
// Every encoder is a pure function: it validates its inputs, assembles the
// payload and returns it. Nothing is rendered, stored or printed here; the
// result is handed to a renderer such as pkg/qrcode.
//
// # Encoders
//
//	EncodeWiFi(ssid, auth, password, hidden)   WIFI:T:WPA;S:Home;P:pw;H:false;;
//	EncodeURL(raw)                              https://example.com
//	EncodePhone(raw)                            tel:+1(234)567-8900
//	EncodeEmail(address, subject, body)         mailto:a@b.com?subject=Hi&body=Yo
//	EncodeSMS(phone, message)                   smsto:+15550100:hello
//	EncodeContact(name, phone, email, org)      BEGIN:VCARD ... END:VCARD
//	EncodeText(raw)                             raw, unchanged
//
// Each payload also exists as a value type (WiFi, URL, Phone, Email, SMS,
// Contact, Text) implementing Payload, so callers can dispatch on Kind:
//
//	p, err := payload.Build(payload.KindWiFi, payload.Fields{SSID: "Home", Auth: "WPA", Password: "pw"})
//	if err != nil {
//		// unknown kind
//	}
//	data, err := p.Encode()
//
// # Escaping
//
// Only the Wi-Fi format escapes its values (see EscapeWiFi). Phone numbers are
// reduced to the dial-string character class. Email subject/body and SMS
// messages are embedded raw unless WithPercentEncoding is given.
//
// # Error Handling
//
// A missing required field or a malformed address yields an error matching
// ErrValidation via errors.Is. The field-level details are available through
// validator.ExtractValidationErrors. No output string is produced in that case.
package payload
