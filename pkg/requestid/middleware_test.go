package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, header string) (ctxID, respID string) {
	t.Helper()
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, requestid.Middleware, "")
		assert.Len(t, ctxID, 36)
		assert.Equal(t, ctxID, respID)
	})

	t.Run("reuses valid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"abc123", "ABC-123_xyz", "550e8400-e29b-41d4-a716-446655440000", strings.Repeat("a", 128)} {
			ctxID, respID := serve(t, requestid.Middleware, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, respID)
		}
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"qr@code",
			"with space",
			"a/b",
			"<script>",
			strings.Repeat("a", 129),
		}
		for _, id := range invalid {
			ctxID, respID := serve(t, requestid.Middleware, id)
			assert.NotEqual(t, id, ctxID, id)
			assert.Equal(t, ctxID, respID, id)
		}
	})

	t.Run("custom generator", func(t *testing.T) {
		t.Parallel()
		mw := requestid.WithGenerator(func() string { return "fixed" })
		ctxID, respID := serve(t, mw, "")
		assert.Equal(t, "fixed", ctxID)
		assert.Equal(t, "fixed", respID)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "id-1", requestid.FromContext(requestid.WithContext(context.Background(), "id-1")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "generated")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "generated")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
}
