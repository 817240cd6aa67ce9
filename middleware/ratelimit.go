package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/pkg/clientip"
	"github.com/dmitrymomot/qrstudio/pkg/ratelimiter"
)

type RateLimitConfig struct {
	Skip    func(ctx handler.Context) bool
	Limiter ratelimiter.RateLimiter
	// KeyExtractor defaults to the IP stored by ClientIP, or clientip.GetIP.
	KeyExtractor func(ctx handler.Context) string
	// ErrorHandler builds the reply for denied requests. Defaults to a 429 error.
	ErrorHandler func(ctx handler.Context, result *ratelimiter.Result) handler.Response
	// SetHeaders adds X-RateLimit-* headers to every limited reply.
	SetHeaders bool
}

// RateLimit denies requests once their key runs out of tokens. Denied
// requests get Retry-After and never reach the handler.
// Panics if cfg.Limiter is nil.
func RateLimit[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}

	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = func(ctx handler.Context) string {
			if ip, ok := GetClientIP(ctx); ok {
				return ip
			}
			return clientip.GetIP(ctx.Request())
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(ctx handler.Context, result *ratelimiter.Result) handler.Response {
			return response.Error(response.ErrTooManyRequests.WithDetails(map[string]any{
				"retry_after": retryAfterSeconds(result),
			}))
		}
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			result, err := cfg.Limiter.Allow(ctx, cfg.KeyExtractor(ctx))
			if err != nil {
				return response.Error(response.ErrInternalServerError.WithError(err))
			}

			var resp handler.Response
			if result.Allowed() {
				resp = next(ctx)
			} else {
				resp = cfg.ErrorHandler(ctx, result)
			}

			return withRateLimitHeaders(resp, result, cfg.SetHeaders)
		}
	}
}

func withRateLimitHeaders(resp handler.Response, result *ratelimiter.Result, full bool) handler.Response {
	if !full && result.Allowed() {
		return resp
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if full {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		}
		if !result.Allowed() {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(result)))
		}
		return resp(w, r)
	}
}

// retryAfterSeconds rounds up so clients never retry too early.
func retryAfterSeconds(result *ratelimiter.Result) int {
	d := result.RetryAfter()
	secs := int(d.Seconds())
	if d > 0 && d%time.Second != 0 {
		secs++
	}
	return max(1, secs)
}
