// Command qrkit generates QR codes interactively or from a YAML manifest.
//
//	qrkit                      # interactive menu
//	qrkit -batch codes.yaml    # every item of a manifest
//	qrkit -no-ascii            # skip terminal rendering
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	pkgconfig "github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/logger"

	"github.com/dmitrymomot/qrkit/internal/batch"
	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/internal/generator"
	"github.com/dmitrymomot/qrkit/internal/prompt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("qrkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	batchPath := fs.String("batch", "", "generate every item of this YAML manifest and exit")
	noASCII := fs.Bool("no-ascii", false, "do not print codes in the terminal")
	envFile := fs.String("env", "", "load variables from this .env file first")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := pkgconfig.LoadEnv(nonEmpty(*envFile)...); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration: %v\n", err)
		return 1
	}
	level, err := cfg.QR.Level()
	if err != nil {
		fmt.Fprintf(stderr, "configuration: %v\n", err)
		return 1
	}

	log := cfg.Logger(stderr)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := cfg.NewStorage(ctx)
	if err != nil {
		log.Error("failed to open storage", logger.Error(err))
		return 1
	}

	gen := generator.New(storage,
		generator.WithSize(cfg.QR.Size),
		generator.WithRecoveryLevel(level),
		generator.WithASCII(cfg.QR.ASCII && !*noASCII && *batchPath == ""),
		generator.WithLogger(log),
	)

	if *batchPath != "" {
		return runBatch(ctx, gen, *batchPath, stdout, log)
	}

	if err := prompt.New(stdin, stdout, gen, prompt.WithLogger(log)).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Error("interactive session failed", logger.Error(err))
		return 1
	}
	return 0
}

func runBatch(ctx context.Context, gen *generator.Generator, path string, stdout io.Writer, log *slog.Logger) int {
	entries, err := batch.Load(path)
	if err != nil {
		log.Error("failed to load manifest", slog.String("path", path), logger.Error(err))
		return 1
	}

	outcomes, err := batch.Run(ctx, gen, entries, log)
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(stdout, "✗ item %d (%s): %v\n", o.Entry.Index, o.Entry.Payload.Kind(), o.Err)
			continue
		}
		fmt.Fprintf(stdout, "✓ item %d (%s): %s\n", o.Entry.Index, o.Result.Kind, o.Result.Location())
	}
	if err != nil {
		log.Error("batch finished with errors", logger.Error(err))
		return 1
	}
	return 0
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
