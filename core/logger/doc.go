// Package logger builds slog loggers and provides attribute helpers.
//
//	log := logger.New(
//		logger.ForEnv(cfg.Env, cfg.AppName),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextValue("request_id", middleware.RequestIDKey{}),
//	)
//
//	log.InfoContext(ctx, "qr rendered",
//		logger.Style("dotted"),
//		logger.Size(400),
//		logger.Elapsed(start),
//	)
//
// Development output is debug-level text; production output is info-level JSON.
//
// Helpers return an empty slog.Attr for zero inputs where that makes sense, so
// logger.Error(nil) and logger.RequestID("") are safe to pass unconditionally;
// slog drops empty attributes.
//
// Context extractors run on every *Context call and add request-scoped values
// such as the request ID without threading them through call sites.
package logger
