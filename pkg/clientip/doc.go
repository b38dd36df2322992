// Package clientip resolves the address of the client behind an HTTP request.
//
// By default only RemoteAddr is used. Behind a reverse proxy, enable the
// forwarding headers (Cloudflare, DigitalOcean App Platform, X-Forwarded-For,
// X-Real-IP) so the real client is seen instead of the proxy:
//
//	resolver := clientip.New(clientip.TrustProxy(cfg.TrustProxy))
//	r.Use(resolver.Middleware)
//
//	ip := clientip.FromContext(r.Context())
//
// Addresses are normalized: IPv4-mapped IPv6 becomes plain IPv4, zones are
// dropped, and malformed values are skipped.
package clientip
