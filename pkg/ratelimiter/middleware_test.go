package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func byHeader(r *http.Request) string { return r.Header.Get("X-Client") }

func serve(h http.Handler, client string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if client != "" {
		req.Header.Set("X-Client", client)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	b := newRealBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	h := ratelimiter.Middleware(b, byHeader)(ok)

	first := serve(h, "a")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, first.Header().Get("Retry-After"))

	second := serve(h, "a")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", second.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, serve(h, "b").Code)

	// No key, no limit.
	for range 3 {
		assert.Equal(t, http.StatusNoContent, serve(h, "").Code)
	}
}

func TestMiddleware_CustomHandlers(t *testing.T) {
	t.Parallel()
	b := newRealBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	denied := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	})
	h := ratelimiter.Middleware(b, byHeader, ratelimiter.WithDeniedHandler(denied))(ok)

	serve(h, "a")
	rec := serve(h, "a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"slow down"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var got error
	failing := ratelimiter.Middleware(limiterFunc(func(context.Context, string) (*ratelimiter.Result, error) {
		return nil, errors.New("store down")
	}), byHeader, ratelimiter.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusServiceUnavailable)
	}))(ok)
	rec = serve(failing, "a")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Error(t, got)
	assert.Equal(t, "store down", got.Error())
}

type limiterFunc func(ctx context.Context, key string) (*ratelimiter.Result, error)

func (f limiterFunc) Allow(ctx context.Context, key string) (*ratelimiter.Result, error) {
	return f(ctx, key)
}
