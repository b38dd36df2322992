package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultProxyHeaders are consulted in order by TrustProxy.
var DefaultProxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver determines the client address of a request.
// The zero value reads RemoteAddr only.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// TrustHeaders makes the resolver read the given headers before RemoteAddr.
// Only use behind a proxy that overwrites them; clients can set any header.
func TrustHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = append([]string(nil), headers...)
	}
}

// TrustProxy is TrustHeaders(DefaultProxyHeaders...) when enabled.
func TrustProxy(enabled bool) Option {
	return func(r *Resolver) {
		if enabled {
			r.headers = append([]string(nil), DefaultProxyHeaders...)
		} else {
			r.headers = nil
		}
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IP returns the normalized client address, or "" when none is valid.
// For list headers such as X-Forwarded-For the first valid entry wins.
func (r *Resolver) IP(req *http.Request) string {
	for _, name := range r.headers {
		value := req.Header.Get(name)
		if value == "" {
			continue
		}
		for part := range strings.SplitSeq(value, ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}
	return normalize(host)
}

// Middleware stores the resolved address in the request context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := WithContext(req.Context(), r.IP(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.Trim(strings.TrimSpace(s), "[]"))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
