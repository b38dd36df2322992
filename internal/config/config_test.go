package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/file"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"

	"github.com/dmitrymomot/qrkit/internal/config"
)

func validApp() config.App {
	return config.App{
		Env:      "production",
		Name:     "qrkit",
		LogLevel: "info",
		QR:       config.QR{Size: 200, RecoveryLevel: "highest", ASCII: true},
		Storage:  config.Storage{Backend: "local", OutputDir: "."},
	}
}

func TestLoad(t *testing.T) {
	// Not parallel: mutates the process environment and the config cache.
	t.Run("defaults", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Cleanup(pkgconfig.ResetCache)

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "qrkit", cfg.Name)
		assert.Equal(t, 200, cfg.QR.Size)
		assert.Equal(t, "highest", cfg.QR.RecoveryLevel)
		assert.True(t, cfg.QR.ASCII)
		assert.Equal(t, "local", cfg.Storage.Backend)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
		assert.Equal(t, 120*time.Second, cfg.HTTP.IdleTimeout)
		assert.False(t, cfg.API.TrustProxy)
		assert.True(t, cfg.API.RateLimit)
		assert.Equal(t, ratelimiter.Config{Capacity: 60, RefillRate: 1, RefillInterval: time.Second}, cfg.API.Limits)
	})

	t.Run("environment overrides", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Cleanup(pkgconfig.ResetCache)
		t.Setenv("QR_SIZE", "512")
		t.Setenv("QR_RECOVERY_LEVEL", "low")
		t.Setenv("QR_ASCII", "false")
		t.Setenv("QR_STORAGE", "s3")
		t.Setenv("S3_BUCKET", "codes")
		t.Setenv("S3_REGION", "eu-west-1")
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("API_TRUST_PROXY", "true")
		t.Setenv("API_RATE_LIMIT_CAPACITY", "10")
		t.Setenv("API_RATE_LIMIT_REFILL_INTERVAL", "1m")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 512, cfg.QR.Size)
		assert.False(t, cfg.QR.ASCII)
		assert.Equal(t, "codes", cfg.S3.Bucket)
		assert.Equal(t, "eu-west-1", cfg.S3.Region)
		assert.Equal(t, ":9090", cfg.HTTP.Addr)
		assert.True(t, cfg.API.TrustProxy)
		assert.Equal(t, 10, cfg.API.Limits.Capacity)
		assert.Equal(t, time.Minute, cfg.API.Limits.RefillInterval)

		level, err := cfg.QR.Level()
		require.NoError(t, err)
		assert.Equal(t, qrcode.Low, level)
	})

	t.Run("invalid values", func(t *testing.T) {
		pkgconfig.ResetCache()
		t.Cleanup(pkgconfig.ResetCache)
		t.Setenv("QR_STORAGE", "ftp")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidStorage)
	})
}

func TestApp_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.App)
		wantErr error
	}{
		{name: "valid", mutate: func(*config.App) {}},
		{name: "zero size", mutate: func(a *config.App) { a.QR.Size = 0 }, wantErr: config.ErrInvalidSize},
		{name: "bad level", mutate: func(a *config.App) { a.QR.RecoveryLevel = "max" }, wantErr: qrcode.ErrInvalidRecoveryLevel},
		{name: "bad storage", mutate: func(a *config.App) { a.Storage.Backend = "gcs" }, wantErr: config.ErrInvalidStorage},
		{name: "storage case-insensitive", mutate: func(a *config.App) { a.Storage.Backend = " S3 " }},
		{
			name:    "rate limit without capacity",
			mutate:  func(a *config.App) { a.API.RateLimit = true },
			wantErr: ratelimiter.ErrInvalidConfig,
		},
		{name: "limits ignored when disabled", mutate: func(a *config.App) { a.API.Limits.Capacity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			app := validApp()
			tt.mutate(&app)
			err := app.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	app := validApp()
	app.LogLevel = "chatty"
	assert.Error(t, app.Validate())
}

func TestApp_Logger(t *testing.T) {
	t.Parallel()
	app := validApp()
	app.LogLevel = "warn"

	buf := &bytes.Buffer{}
	log := app.Logger(buf)
	log.Info("skipped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "qrkit", entry["service"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, slog.LevelWarn.String(), entry["level"])
}

func TestApp_NewStorage(t *testing.T) {
	t.Parallel()

	t.Run("local", func(t *testing.T) {
		t.Parallel()
		app := validApp()
		app.Storage.OutputDir = t.TempDir()
		app.Storage.BaseURL = "https://cdn.example.com/qr"

		storage, err := app.NewStorage(context.Background())
		require.NoError(t, err)
		require.IsType(t, &file.LocalStorage{}, storage)
		assert.Equal(t, "https://cdn.example.com/qr/url_qr.png", storage.URL("url_qr.png"))
	})

	t.Run("s3 requires bucket and region", func(t *testing.T) {
		t.Parallel()
		app := validApp()
		app.Storage.Backend = config.StorageS3

		storage, err := app.NewStorage(context.Background())
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
		assert.Nil(t, storage)
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()
		app := validApp()
		app.Storage.Backend = "tape"
		_, err := app.NewStorage(context.Background())
		assert.ErrorIs(t, err, config.ErrInvalidStorage)
	})
}
