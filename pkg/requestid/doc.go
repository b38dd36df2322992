// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is at most 128
// characters of letters, digits, '-' and '_'; anything else is replaced by a
// new UUIDv4. The id is stored in the request context (see FromContext) and
// echoed in the response header. LoggerExtractor plugs the id into
// logger.WithContextExtractors so every record logged with the request
// context carries a request_id attribute.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
