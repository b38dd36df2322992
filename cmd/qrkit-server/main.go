// Command qrkit-server serves the QR API over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/qrkit/pkg/clientip"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"

	"github.com/dmitrymomot/qrkit/internal/api"
	"github.com/dmitrymomot/qrkit/internal/config"
	"github.com/dmitrymomot/qrkit/internal/generator"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		return 1
	}

	log := cfg.Logger(os.Stdout, logger.WithContextExtractors(requestid.LoggerExtractor()))
	logger.SetAsDefault(log)

	level, err := cfg.QR.Level()
	if err != nil {
		log.Error("invalid recovery level", logger.Error(err))
		return 1
	}
	// Images are returned in the response, never written to storage.
	gen := generator.New(nil,
		generator.WithSize(cfg.QR.Size),
		generator.WithRecoveryLevel(level),
		generator.WithLogger(log),
	)

	opts := []api.Option{
		api.WithClientIP(clientip.New(clientip.TrustProxy(cfg.API.TrustProxy))),
	}
	if cfg.API.RateLimit {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, cfg.API.Limits)
		if err != nil {
			log.Error("invalid rate limit", logger.Error(err))
			return 1
		}
		opts = append(opts, api.WithRateLimiter(bucket))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), api.New(gen, log, opts...).Router()); err != nil {
		log.Error("server stopped", logger.Error(err))
		return 1
	}
	return 0
}
