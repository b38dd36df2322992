// Package prompt implements the interactive terminal flow: a numbered menu,
// per-kind questions and a printed summary of the generated code.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/validator"

	"github.com/dmitrymomot/qrkit/internal/generator"
)

const rule = "=================================================="

// Generator produces a code for a payload.
type Generator interface {
	Generate(ctx context.Context, p payload.Payload) (*generator.Result, error)
}

// Prompter reads answers line by line from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	gen Generator
	log *slog.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

func WithLogger(l *slog.Logger) Option {
	return func(p *Prompter) {
		if l != nil {
			p.log = l
		}
	}
}

func New(in io.Reader, out io.Writer, gen Generator, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		gen: gen,
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run shows the menu until one code is generated. Invalid choices, rejected
// input and failed generations return to the menu. End of input ends Run with
// a nil error; a cancelled ctx ends it with ctx.Err().
func (p *Prompter) Run(ctx context.Context) error {
	p.printf("%s\nUniversal QR Code Generator\n%s\n", rule, rule)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.printMenu()
		choice, err := p.ask("\nEnter your choice (1-7): ")
		if err != nil {
			return endOfInput(err)
		}

		kind, err := payload.ParseKind(choice)
		if err != nil {
			p.printf("Invalid choice. Please try again.\n")
			continue
		}
		p.log.DebugContext(ctx, "payload kind selected", logger.Kind(kind))

		fields, err := p.collect(kind)
		if err != nil {
			if errors.Is(err, validator.ErrValidationFailed) {
				p.printValidation(err)
				continue
			}
			return endOfInput(err)
		}

		pl, err := payload.Build(kind, fields)
		if err != nil {
			return err
		}

		res, err := p.gen.Generate(ctx, pl)
		switch {
		case err == nil:
			p.printResult(res)
			return nil
		case errors.Is(err, generator.ErrValidation):
			p.printValidation(err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			p.printf("Error generating QR code: %v\n", err)
		}
	}
}

func (p *Prompter) printMenu() {
	p.printf("\nSelect QR Code Type:\n")
	for _, k := range payload.Kinds() {
		p.printf("%d. %s\n", k, k.Label())
	}
}

func (p *Prompter) printValidation(err error) {
	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		p.printf("Invalid input: %v\n", err)
		return
	}
	for _, e := range errs {
		p.printf("%s\n", e.Message)
	}
}

func (p *Prompter) printResult(res *generator.Result) {
	p.printf("\n✓ Saved QR image to: %s\n", res.Location())
	p.printf("  Size: %dx%d pixels\n", res.Size, res.Size)
	if res.ASCII != "" {
		p.printf("\nASCII QR Code (scan from screen):\n\n%s\n", res.ASCII)
	}
	p.printf("\nDone! Scan the PNG or the terminal QR with your phone's camera or QR app.\n")
}

// ask prints label and returns the answer without its line terminator.
// A final line without a newline is still returned; io.EOF comes on the next call.
func (p *Prompter) ask(label string) (string, error) {
	p.printf("%s", label)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
