// Package file stores rendered artifacts (QR code PNGs) on the local
// filesystem or in Amazon S3 and S3-compatible services.
//
// Both backends implement Storage:
//   - LocalStorage: every path is confined to a base directory; traversal
//     attempts fail with ErrInvalidPath.
//   - S3Storage: objects are written to a bucket; SDK failures are classified
//     into the package's sentinel errors (ErrAccessDenied, ErrBucketNotFound, …).
//
// # Usage
//
//	import "github.com/dmitrymomot/qrkit/pkg/file"
//
//	storage, err := file.NewLocalStorage("./out", "")
//	if err != nil {
//		// handle error
//	}
//	f, err := storage.Write(ctx, "wifi_qr.png", pngBytes, "image/png")
//
// # Error Handling
//
// Errors wrap package-level sentinels and can be compared with errors.Is.
// Context cancellation is reported as the context's own error for local
// storage and as ErrOperationCanceled / ErrOperationTimeout for S3.
package file
