// Package generator runs the encode, render and store pipeline for one payload.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/file"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/slug"
)

const (
	pngMIMEType   = "image/png"
	maxNameLength = 64
)

// Result describes one generated code.
type Result struct {
	Kind     payload.Kind
	Payload  string
	Filename string
	Size     int // PNG edge in pixels
	PNG      []byte
	File     *file.File // nil when the generator has no storage
	ASCII    string     // empty unless terminal rendering is enabled
}

// Generator encodes payloads, renders them as PNG and writes the image to storage.
// It is safe for concurrent use when its storage is.
type Generator struct {
	storage file.Storage
	size    int
	level   qrcode.RecoveryLevel
	ascii   bool
	inverse bool
	log     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSize sets the PNG edge length in pixels. Non-positive values are ignored.
func WithSize(px int) Option {
	return func(g *Generator) {
		if px > 0 {
			g.size = px
		}
	}
}

func WithRecoveryLevel(level qrcode.RecoveryLevel) Option {
	return func(g *Generator) { g.level = level }
}

// WithASCII enables terminal rendering of every generated code.
func WithASCII(enabled bool) Option {
	return func(g *Generator) { g.ascii = enabled }
}

// WithInverseASCII swaps dark and light blocks in terminal art.
func WithInverseASCII() Option {
	return func(g *Generator) { g.inverse = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator. A nil storage keeps images in memory only.
func New(storage file.Storage, opts ...Option) *Generator {
	g := &Generator{
		storage: storage,
		size:    qrcode.DefaultSize,
		level:   qrcode.Highest,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate encodes p and stores it as "<kind>_qr.png".
func (g *Generator) Generate(ctx context.Context, p payload.Payload) (*Result, error) {
	return g.GenerateNamed(ctx, p, "")
}

// GenerateNamed is Generate with name replacing the kind in the file name,
// giving "<slug>_qr.png" where slug is name reduced to lowercase ASCII letters,
// digits and hyphens. An empty name falls back to the kind; a name with nothing
// left after slugging fails with ErrInvalidName.
func (g *Generator) GenerateNamed(ctx context.Context, p payload.Payload, name string) (*Result, error) {
	start := time.Now()

	content, err := payload.Encode(p)
	if err != nil {
		return nil, errors.Join(ErrValidation, err)
	}
	kind := p.Kind()

	filename, err := outputName(kind, name)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Generate(content, g.size, qrcode.WithRecoveryLevel(g.level))
	if err != nil {
		g.log.WarnContext(ctx, "qr code rejected by renderer",
			logger.Kind(kind),
			slog.Int("content_length", len(content)),
			logger.Error(err),
		)
		return nil, errors.Join(ErrRender, err)
	}

	res := &Result{
		Kind:     kind,
		Payload:  content,
		Filename: filename,
		Size:     g.size,
		PNG:      png,
	}

	if g.storage != nil {
		f, err := g.storage.Write(ctx, filename, png, pngMIMEType)
		if err != nil {
			g.log.ErrorContext(ctx, "failed to store qr code",
				logger.Kind(kind),
				logger.File(filename),
				logger.Error(err),
			)
			return nil, errors.Join(ErrStorage, err)
		}
		res.File = f
	}

	if g.ascii {
		art, err := qrcode.ASCII(content, g.asciiOptions()...)
		if err != nil {
			return nil, errors.Join(ErrRender, err)
		}
		res.ASCII = art
	}

	g.log.InfoContext(ctx, "qr code generated",
		logger.Kind(kind),
		logger.File(res.Location()),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

func (g *Generator) asciiOptions() []qrcode.Option {
	opts := []qrcode.Option{qrcode.WithRecoveryLevel(g.level)}
	if g.inverse {
		opts = append(opts, qrcode.WithInverseColors())
	}
	return opts
}

// Location is where the image ended up: its URL, path, or bare file name.
func (r *Result) Location() string {
	switch {
	case r.File == nil:
		return r.Filename
	case r.File.URL != "" && r.File.URL != r.File.RelativePath:
		return r.File.URL
	case r.File.AbsolutePath != "":
		return r.File.AbsolutePath
	default:
		return r.File.RelativePath
	}
}

func outputName(kind payload.Kind, name string) (string, error) {
	if name == "" {
		return kind.FilePrefix() + ".png", nil
	}
	base := slug.Make(name, slug.MaxLength(maxNameLength))
	if base == "" {
		return "", errors.Join(ErrValidation, ErrInvalidName)
	}
	return base + "_qr.png", nil
}
