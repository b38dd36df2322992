package file

import (
	"context"
	"mime"
	"path"
	"strings"
)

// File represents stored file metadata.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	AbsolutePath string // empty for remote backends
	RelativePath string
	URL          string
}

// Storage interface for different backends.
type Storage interface {
	// Write stores data at path, replacing any existing file.
	Write(ctx context.Context, path string, data []byte, mimeType string) (*File, error)
	// Delete removes a single file.
	Delete(ctx context.Context, path string) error
	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) bool
	// URL returns the public URL for a file.
	URL(path string) string
}

// DetectMIMEType guesses the MIME type from the file extension.
func DetectMIMEType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(name))); t != "" {
		return t
	}
	return "application/octet-stream"
}
