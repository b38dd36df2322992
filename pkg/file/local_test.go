package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/file"
)

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty base dir", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage("", "")
		assert.True(t, errors.Is(err, file.ErrInvalidConfig))
	})

	t.Run("creates missing base dir", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "out")
		storage, err := file.NewLocalStorage(dir, "")
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, dir, storage.BaseDir())
	})
}

func TestLocalStorage_Write(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	storage, err := file.NewLocalStorage(tempDir, "/files")
	require.NoError(t, err)

	t.Run("writes png file", func(t *testing.T) {
		t.Parallel()
		content := []byte("\x89PNG fake")

		f, err := storage.Write(context.Background(), "wifi_qr.png", content, "")
		require.NoError(t, err)

		assert.Equal(t, "wifi_qr.png", f.Filename)
		assert.Equal(t, int64(len(content)), f.Size)
		assert.Equal(t, "image/png", f.MIMEType)
		assert.Equal(t, filepath.Join(tempDir, "wifi_qr.png"), f.AbsolutePath)
		assert.Equal(t, "wifi_qr.png", f.RelativePath)
		assert.Equal(t, "/files/wifi_qr.png", f.URL)

		data, err := os.ReadFile(f.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, content, data)

		info, err := os.Stat(f.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Write(context.Background(), "text_qr.png", []byte("first version"), "image/png")
		require.NoError(t, err)
		f, err := storage.Write(context.Background(), "text_qr.png", []byte("second"), "image/png")
		require.NoError(t, err)

		data, err := os.ReadFile(f.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()
		f, err := storage.Write(context.Background(), "batch/2024/url_qr.png", []byte("x"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("batch", "2024", "url_qr.png"), f.RelativePath)
		assert.True(t, storage.Exists(context.Background(), "batch/2024/url_qr.png"))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Write(context.Background(), "../escape.png", []byte("x"), "image/png")
		assert.True(t, errors.Is(err, file.ErrInvalidPath))
	})

	t.Run("rejects base directory itself", func(t *testing.T) {
		t.Parallel()
		_, err := storage.Write(context.Background(), ".", []byte("x"), "image/png")
		assert.True(t, errors.Is(err, file.ErrIsDirectory))
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := storage.Write(ctx, "phone_qr.png", []byte("x"), "image/png")
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, storage.Exists(context.Background(), "phone_qr.png"))
	})
}

func TestLocalStorage_Delete(t *testing.T) {
	t.Parallel()
	storage, err := file.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = storage.Write(ctx, "sms_qr.png", []byte("x"), "image/png")
	require.NoError(t, err)
	require.True(t, storage.Exists(ctx, "sms_qr.png"))

	require.NoError(t, storage.Delete(ctx, "sms_qr.png"))
	assert.False(t, storage.Exists(ctx, "sms_qr.png"))

	err = storage.Delete(ctx, "sms_qr.png")
	assert.True(t, errors.Is(err, file.ErrFileNotFound))

	_, err = storage.Write(ctx, "dir/a.png", []byte("x"), "image/png")
	require.NoError(t, err)
	err = storage.Delete(ctx, "dir")
	assert.True(t, errors.Is(err, file.ErrIsDirectory))

	assert.False(t, storage.Exists(ctx, "../outside"))
}

func TestLocalStorage_URL(t *testing.T) {
	t.Parallel()

	withBase, err := file.NewLocalStorage(t.TempDir(), "https://cdn.example.com/qr")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/qr/email_qr.png", withBase.URL("/email_qr.png"))

	withoutBase, err := file.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "email_qr.png", withoutBase.URL("email_qr.png"))
}

func TestDetectMIMEType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/png", file.DetectMIMEType("contact_qr.PNG"))
	assert.Equal(t, "application/octet-stream", file.DetectMIMEType("no-extension"))
}
