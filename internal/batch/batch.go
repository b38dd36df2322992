// Package batch generates every code listed in a YAML manifest.
//
//	items:
//	  - kind: wifi
//	    output: office
//	    ssid: Office
//	    password: s3cret
//	  - kind: 7
//	    text: hello
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/payload"

	"github.com/dmitrymomot/qrkit/internal/generator"
)

var (
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrEmptyManifest   = errors.New("manifest has no items")
	ErrItemsFailed     = errors.New("one or more items failed")
)

// Item is one manifest entry: the kind, an optional output prefix and the payload fields.
type Item struct {
	Kind           string `yaml:"kind"`
	Output         string `yaml:"output,omitempty"`
	payload.Fields `yaml:",inline"`
}

// Manifest is the decoded document.
type Manifest struct {
	Items []Item `yaml:"items"`
}

// Entry is a resolved item ready for generation.
type Entry struct {
	Index   int
	Output  string
	Payload payload.Payload
}

// Decode reads a manifest and resolves every item. Unknown keys are rejected.
func Decode(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, errors.Join(ErrInvalidManifest, err)
	}
	return m.Entries()
}

// Load decodes the manifest at path.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Entries resolves item kinds and builds payloads. All bad kinds are reported together.
func (m Manifest) Entries() ([]Entry, error) {
	if len(m.Items) == 0 {
		return nil, ErrEmptyManifest
	}

	entries := make([]Entry, 0, len(m.Items))
	var errs []error
	for i, item := range m.Items {
		kind, err := payload.ParseKind(item.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		p, err := payload.Build(kind, item.Fields.Trimmed())
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		entries = append(entries, Entry{Index: i + 1, Output: item.Output, Payload: p})
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidManifest}, errs...)...)
	}
	return entries, nil
}

// Generator produces a named code for a payload.
type Generator interface {
	GenerateNamed(ctx context.Context, p payload.Payload, name string) (*generator.Result, error)
}

// Outcome is the result of one entry; exactly one of Result and Err is set.
type Outcome struct {
	Entry  Entry
	Result *generator.Result
	Err    error
}

// Run generates every entry in order. A failing entry does not stop the run;
// the returned error wraps ErrItemsFailed when any entry failed. Cancelling
// ctx stops before the next entry.
func Run(ctx context.Context, gen Generator, entries []Entry, log *slog.Logger) ([]Outcome, error) {
	if log == nil {
		log = logger.Discard()
	}

	outcomes := make([]Outcome, 0, len(entries))
	failed := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		res, err := gen.GenerateNamed(ctx, e.Payload, e.Output)
		if err != nil {
			failed++
			log.WarnContext(ctx, "batch item failed",
				slog.Int("item", e.Index),
				logger.Kind(e.Payload.Kind()),
				logger.Error(err),
			)
		}
		outcomes = append(outcomes, Outcome{Entry: e, Result: res, Err: err})
	}

	if failed > 0 {
		return outcomes, fmt.Errorf("%w: %d of %d", ErrItemsFailed, failed, len(entries))
	}
	return outcomes, nil
}
