// Package qrcode renders text payloads as QR codes: PNG bytes, data-URI
// strings for HTML, or block-character art for terminals.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// defaults suited to printed and on-screen codes (200px images, highest error
// correction, 4-module quiet zone) and input validation.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrkit/pkg/qrcode"
//
//	// PNG bytes, default size and recovery level
//	img, err := qrcode.Generate("WIFI:T:WPA;S:Home;P:pw;H:false;;", 0)
//
//	// Data URI at 256px with medium error correction
//	uri, err := qrcode.GenerateBase64Image("https://example.com", 256,
//		qrcode.WithRecoveryLevel(qrcode.Medium))
//
//	// Terminal art
//	art, err := qrcode.ASCII("tel:+15550100")
//
// # Error Handling
//
//   - ErrEmptyContent             – the content argument was empty.
//   - ErrorFailedToGenerateQRCode – the upstream library refused the content,
//     typically because it exceeds the capacity at the chosen recovery level.
//   - ErrInvalidRecoveryLevel     – ParseRecoveryLevel got an unknown name.
//
// Compare with errors.Is.
package qrcode
