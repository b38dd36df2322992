// Package logger builds *slog.Logger instances from functional options and
// provides helper constructors for the attributes used across qrkit.
//
// Options select the output format (text or JSON), the minimum level, static
// attributes, and ContextExtractor callbacks that pull values such as request
// ids out of context.Context on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "qrkit"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "qr code generated",
//	    logger.Kind(payload.KindWiFi),
//	    logger.File("wifi_qr.png"),
//	)
//
// Development presets log text at debug level; staging and production log
// JSON at info level.
package logger
