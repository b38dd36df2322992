// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run opens the listener, logs the bound address and blocks until the context
// is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called. Shutdown
// drains in-flight requests within a configurable timeout. Errors are wrapped
// with ErrStart and ErrShutdown for errors.Is.
//
// Servers are built with New and Option values, or with NewFromConfig from a
// Config parsed by the config package:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// "NOT_READY") probes.
package httpserver
