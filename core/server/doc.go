// Package server wraps http.Server with graceful shutdown, environment-driven
// configuration and errgroup-friendly lifecycle management.
//
// # Basic Usage
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run blocks until the context is cancelled, then calls Stop, which drains
// in-flight requests for at most the shutdown timeout.
//
// # Configuration
//
// Config is loaded from SERVER_* environment variables. Setting both
// SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE switches the server to HTTPS.
//
// Listening on port 0 picks a free port; Addr reports the bound address once
// Ready is closed.
package server
