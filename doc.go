// Package qrstudio renders QR codes in styled module shapes and serves them
// over HTTP and the command line.
//
// # Packages
//
// Rendering:
//
//   - github.com/dmitrymomot/qrstudio/pkg/qrcode: module-matrix rasterizer.
//     Encodes text with skip2/go-qrcode and paints standard, kiwi-tinted,
//     rounded and dotted modules into a PNG.
//
// Service:
//
//   - github.com/dmitrymomot/qrstudio/app/studio: HTTP service with inline,
//     download and data-URI routes, the style catalog and health checks.
//   - github.com/dmitrymomot/qrstudio/cmd/qrstudio: kong CLI with serve,
//     render and modes commands.
//
// Framework:
//
//   - github.com/dmitrymomot/qrstudio/core/config: cached env + .env loading.
//   - github.com/dmitrymomot/qrstudio/core/logger: slog construction and attribute helpers.
//   - github.com/dmitrymomot/qrstudio/core/handler: typed handler, response and middleware contracts.
//   - github.com/dmitrymomot/qrstudio/core/router: gorilla/mux backed router.
//   - github.com/dmitrymomot/qrstudio/core/response: text, JSON, image and error responses.
//   - github.com/dmitrymomot/qrstudio/core/server: HTTP server lifecycle.
//   - github.com/dmitrymomot/qrstudio/core/health: liveness and readiness handlers.
//   - github.com/dmitrymomot/qrstudio/middleware: request IDs, logging, client IP, rate limiting.
//
// Utilities:
//
//   - github.com/dmitrymomot/qrstudio/pkg/clientip: client IP from proxy headers.
//   - github.com/dmitrymomot/qrstudio/pkg/ratelimiter: token bucket limiter with an in-memory store.
package qrstudio
