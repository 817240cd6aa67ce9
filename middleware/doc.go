// Package middleware provides handler.Middleware implementations shared by
// the HTTP surface: request IDs, structured request logging, client IP
// extraction and per-client rate limiting.
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		middleware.ClientIP[*router.Context](),
//	)
//
// RequestID runs first so the logging middleware can attach the ID.
// RateLimit reads the IP stored by ClientIP and is usually applied per route
// with handler.Chain.
package middleware
