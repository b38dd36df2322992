// Package api exposes the payload encoders over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrkit/pkg/clientip"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
	"github.com/dmitrymomot/qrkit/pkg/validator"

	"github.com/dmitrymomot/qrkit/internal/generator"
)

// Generator produces a code for a payload.
type Generator interface {
	Generate(ctx context.Context, p payload.Payload) (*generator.Result, error)
}

// Handler serves the QR API.
type Handler struct {
	gen     Generator
	log     *slog.Logger
	ips     *clientip.Resolver
	limiter ratelimiter.Limiter
}

// Option configures a Handler.
type Option func(*Handler)

// WithClientIP sets how client addresses are resolved. The default trusts
// RemoteAddr only.
func WithClientIP(r *clientip.Resolver) Option {
	return func(h *Handler) {
		if r != nil {
			h.ips = r
		}
	}
}

// WithRateLimiter limits generation requests per client address.
func WithRateLimiter(l ratelimiter.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

func New(gen Generator, log *slog.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &Handler{gen: gen, log: log, ips: clientip.New()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts every route with request ids, client addresses, access logs
// and panic recovery. Generation is rate limited when a limiter is set.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(h.ips.Middleware)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	var limited []func(http.Handler) http.Handler
	if h.limiter != nil {
		limited = append(limited, ratelimiter.Middleware(h.limiter, clientKey,
			ratelimiter.WithDeniedHandler(h.handle(tooManyRequests)),
			ratelimiter.WithErrorHandler(h.limiterError),
		))
	}

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	r.Route("/api", func(api chi.Router) {
		api.Get("/kinds", h.handle(h.kinds))
		api.With(limited...).Post("/qr/{kind}", h.handle(h.generate))
	})
	return r
}

// unresolvedClient keys requests with no usable address at all.
const unresolvedClient = "unresolved"

// clientKey is the resolved address, else the raw RemoteAddr. It is never
// empty, since an empty key would skip limiting.
func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return unresolvedClient
}

func tooManyRequests(*http.Request) Response {
	return Error(http.StatusTooManyRequests, "rate limit exceeded", nil)
}

func (h *Handler) limiterError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "rate limiter failed", logger.Error(err))
	h.handle(func(*http.Request) Response {
		return Error(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
	})(w, r)
}

// KindInfo describes one payload kind.
type KindInfo struct {
	Kind  payload.Kind `json:"kind"`
	Menu  int          `json:"menu"`
	Label string       `json:"label"`
}

// GenerateResponse is the JSON body of a successful generation.
type GenerateResponse struct {
	Kind    payload.Kind `json:"kind"`
	Payload string       `json:"payload"`
	Image   string       `json:"image"`
}

func (h *Handler) kinds(*http.Request) Response {
	kinds := payload.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, KindInfo{Kind: k, Menu: int(k), Label: k.Label()})
	}
	return JSON(out)
}

func (h *Handler) generate(r *http.Request) Response {
	kind, err := payload.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return Error(http.StatusBadRequest, err.Error(), nil)
	}

	percent, err := queryBool(r, "percent_encode")
	if err != nil {
		return Error(http.StatusBadRequest, err.Error(), nil)
	}

	var fields payload.Fields
	if err := bindJSON(r, &fields); err != nil {
		return h.bindError(err)
	}
	fields = fields.Trimmed()
	fields.PercentEncode = fields.PercentEncode || percent

	p, err := payload.Build(kind, fields)
	if err != nil {
		return Error(http.StatusBadRequest, err.Error(), nil)
	}

	res, err := h.gen.Generate(r.Context(), p)
	if err != nil {
		return h.generateError(r.Context(), err)
	}

	if r.URL.Query().Get("format") == "png" {
		return PNG(res.PNG, res.Filename)
	}
	return JSON(GenerateResponse{
		Kind:    res.Kind,
		Payload: res.Payload,
		Image:   qrcode.DataURI(res.PNG),
	})
}

func (h *Handler) bindError(err error) Response {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return Error(http.StatusRequestEntityTooLarge, err.Error(), nil)
	case errors.Is(err, ErrUnsupportedMediaType):
		return Error(http.StatusUnsupportedMediaType, err.Error(), nil)
	default:
		return Error(http.StatusBadRequest, err.Error(), nil)
	}
}

func (h *Handler) generateError(ctx context.Context, err error) Response {
	switch {
	case errors.Is(err, generator.ErrValidation):
		fields := validator.ExtractValidationErrors(err).Map()
		return Error(http.StatusUnprocessableEntity, "validation failed", fields)
	case errors.Is(err, generator.ErrRender):
		return Error(http.StatusUnprocessableEntity, "payload cannot be encoded as a QR code", nil)
	default:
		h.log.ErrorContext(ctx, "qr generation failed", logger.Error(err))
		return Error(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
	}
}

// handle adapts a Response-returning function to an http.HandlerFunc.
func (h *Handler) handle(fn func(*http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); err != nil {
			h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
		}
	}
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.log.InfoContext(r.Context(), "http request",
			logger.Component("api"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientip.FromContext(r.Context())),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
