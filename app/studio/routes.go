package studio

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/health"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
	"github.com/dmitrymomot/qrstudio/middleware"
)

func (a *App) routes() {
	r := a.router
	r.Use(
		middleware.RequestID[*router.Context](),
		middleware.LoggingWithLogger[*router.Context](a.logger),
		middleware.ClientIP[*router.Context](),
	)

	r.Get("/qr.png", a.limited(a.qrImage))
	r.Get("/qr.json", a.limited(a.qrJSON))
	r.Get("/qr/download", a.limited(a.qrDownload))
	r.Get("/qr/{style}.png", a.limited(a.qrImage))
	r.Get("/modes", a.listModes)

	r.Get("/health/live", health.Liveness[*router.Context])
	r.Get("/health/ready", health.Readiness[*router.Context](a.logger, a.SelfCheck))
}

// limited applies the per-client rate limit to a render route.
func (a *App) limited(h handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
	if a.limiter == nil {
		return h
	}
	return handler.Chain(h, middleware.RateLimit[*router.Context](middleware.RateLimitConfig{
		Limiter:    a.limiter,
		SetHeaders: true,
	}))
}

// errorHandler answers JSON for JSON endpoints and clients, plain text otherwise.
func errorHandler(ctx *router.Context, err error) {
	if wantsJSON(ctx.Request()) {
		response.JSONErrorHandler(ctx, err)
		return
	}
	response.ErrorHandler(ctx, err)
}

func wantsJSON(r *http.Request) bool {
	return strings.HasSuffix(r.URL.Path, ".json") ||
		r.URL.Path == "/modes" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
