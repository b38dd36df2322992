package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/logger"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		got  slog.Attr
		want slog.Attr
	}{
		{got: logger.RequestID("abc"), want: slog.String("request_id", "abc")},
		{got: logger.RequestID(""), want: slog.Attr{}},
		{got: logger.Kind(stringer("wifi")), want: slog.String("kind", "wifi")},
		{got: logger.Kind(nil), want: slog.Attr{}},
		{got: logger.File("wifi_qr.png"), want: slog.String("file", "wifi_qr.png")},
		{got: logger.Component("api"), want: slog.String("component", "api")},
		{got: logger.Duration(time.Second), want: slog.Duration("duration", time.Second)},
	}
	for _, tt := range tests {
		assert.True(t, tt.want.Equal(tt.got), "got %v, want %v", tt.got, tt.want)
	}
}
