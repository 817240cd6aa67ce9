package studio

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrstudio/core/config"
	"github.com/dmitrymomot/qrstudio/core/logger"
	"github.com/dmitrymomot/qrstudio/core/router"
	"github.com/dmitrymomot/qrstudio/core/server"
	"github.com/dmitrymomot/qrstudio/middleware"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
	"github.com/dmitrymomot/qrstudio/pkg/ratelimiter"
)

// App is the QR studio HTTP service.
type App struct {
	config   Config
	router   router.Router[*router.Context]
	server   *server.Server
	logger   *slog.Logger
	renderer *qrcode.Renderer
	cache    *Cache
	now      func() time.Time

	limiter    ratelimiter.RateLimiter
	limitStore *ratelimiter.MemoryStore
}

type AppOption func(*App) error

// NewApp loads Config from the environment, applies opts and registers the routes.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = logger.New(
			logger.ForEnv(app.config.Env, app.config.AppName),
			logger.WithLevel(logger.ParseLevel(app.config.LogLevel)),
			logger.WithContextValue("request_id", middleware.RequestIDKey{}),
		)
	}

	if app.renderer == nil {
		app.renderer = qrcode.NewRenderer()
	}

	if app.cache == nil {
		c, err := NewCache(app.renderer, app.config.CacheSize)
		if err != nil {
			return nil, err
		}
		app.cache = c
	}

	if app.limiter == nil && app.config.RateLimit > 0 {
		store := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreLogger(app.logger))
		limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       max(app.config.RateBurst, 1),
			RefillRate:     app.config.RateLimit,
			RefillInterval: app.config.RateInterval,
		})
		if err != nil {
			return nil, err
		}
		app.limiter, app.limitStore = limiter, store
	}

	if app.router == nil {
		app.router = router.New[*router.Context](
			router.WithErrorHandler[*router.Context](errorHandler),
			router.WithLogger[*router.Context](app.logger),
		)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.routes()

	return app, nil
}

// WithConfig replaces the configuration loaded from the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		return nil
	}
}

func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}

// WithRenderer replaces the default renderer, e.g. to plug in another Encoder.
func WithRenderer(r *qrcode.Renderer) AppOption {
	return func(app *App) error {
		if r == nil {
			return errors.New("renderer cannot be nil")
		}
		app.renderer = r
		return nil
	}
}

// WithClock sets the time source used for download filenames.
func WithClock(now func() time.Time) AppOption {
	return func(app *App) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		app.now = now
		return nil
	}
}

// WithRateLimiter replaces the per-client limiter applied to render routes.
func WithRateLimiter(l ratelimiter.RateLimiter) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("rate limiter cannot be nil")
		}
		app.limiter = l
		return nil
	}
}

// Handler returns the routed HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Server returns the HTTP server the app runs on.
func (a *App) Server() *server.Server {
	return a.server
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "qr studio starting",
		logger.Component("studio"),
		logger.Count("routes", len(a.router.Routes())),
		logger.Count("cache_size", a.config.CacheSize),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.router))
	if a.limitStore != nil {
		g.Go(a.limitStore.Run(ctx))
	}
	return g.Wait()
}

// SelfCheck renders a small code to verify the pipeline works. Used for readiness.
func (a *App) SelfCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := a.renderer.Render("qrstudio", qrcode.StyleStandard, 100, qrcode.DefaultMargin)
	return err
}
