// Package config holds the qrkit application configuration and turns it into
// the logger, storage backend and renderer options the commands need.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/file"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
)

// Storage backends selectable via QR_STORAGE.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

var (
	ErrInvalidStorage = errors.New("invalid storage backend")
	ErrInvalidSize    = errors.New("invalid qr size")
)

// App is the full environment-driven configuration.
type App struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"qrkit"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	QR      QR
	Storage Storage
	S3      file.S3Config
	HTTP    httpserver.Config
	API     API
}

// API controls the HTTP surface of qrkit-server.
type API struct {
	TrustProxy bool               `env:"API_TRUST_PROXY" envDefault:"false"`
	RateLimit  bool               `env:"API_RATE_LIMIT" envDefault:"true"`
	Limits     ratelimiter.Config `envPrefix:"API_RATE_LIMIT_"`
}

// QR controls rendering.
type QR struct {
	Size          int    `env:"QR_SIZE" envDefault:"200"`
	RecoveryLevel string `env:"QR_RECOVERY_LEVEL" envDefault:"highest"`
	ASCII         bool   `env:"QR_ASCII" envDefault:"true"`
}

// Storage selects where generated images go.
type Storage struct {
	Backend   string `env:"QR_STORAGE" envDefault:"local"`
	OutputDir string `env:"QR_OUTPUT_DIR" envDefault:"."`
	BaseURL   string `env:"QR_BASE_URL"`
}

// Load reads App from the environment (and .env, if present) and validates it.
func Load() (App, error) {
	var cfg App
	if err := config.Load(&cfg); err != nil {
		return App{}, err
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (a App) Validate() error {
	if a.QR.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, a.QR.Size)
	}
	if _, err := a.QR.Level(); err != nil {
		return err
	}
	switch a.Storage.backend() {
	case StorageLocal, StorageS3:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorage, a.Storage.Backend)
	}
	if _, err := logger.ParseLevel(a.LogLevel); err != nil {
		return err
	}
	if a.API.RateLimit {
		if err := a.API.Limits.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Level parses the configured recovery level.
func (q QR) Level() (qrcode.RecoveryLevel, error) {
	return qrcode.ParseRecoveryLevel(q.RecoveryLevel)
}

func (s Storage) backend() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

// Logger builds the application logger writing to w. Extra options are applied
// after the environment preset.
func (a App) Logger(w io.Writer, opts ...logger.Option) *slog.Logger {
	level, _ := logger.ParseLevel(a.LogLevel)
	base := []logger.Option{
		logger.WithEnvironment(a.Env, a.Name),
		logger.WithLevel(level),
		logger.WithOutput(w),
	}
	return logger.New(append(base, opts...)...)
}

// NewStorage opens the configured backend.
func (a App) NewStorage(ctx context.Context, opts ...file.S3Option) (file.Storage, error) {
	switch a.Storage.backend() {
	case StorageLocal:
		local, err := file.NewLocalStorage(a.Storage.OutputDir, a.Storage.BaseURL)
		if err != nil {
			return nil, err
		}
		return local, nil
	case StorageS3:
		s3cfg := a.S3
		if s3cfg.BaseURL == "" {
			s3cfg.BaseURL = a.Storage.BaseURL
		}
		remote, err := file.NewS3Storage(ctx, s3cfg, opts...)
		if err != nil {
			return nil, err
		}
		return remote, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStorage, a.Storage.Backend)
	}
}
