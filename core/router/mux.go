package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"

	gmux "github.com/gorilla/mux"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// mux adapts gorilla/mux to typed handlers. Gorilla matches the route; mux
// builds the context, runs middleware and hands errors to the error handler.
type mux[C handler.Context] struct {
	router       *gmux.Router
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger

	mu          sync.RWMutex
	middlewares []handler.Middleware[C]
	routes      []Route
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		router:       gmux.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.router.NotFoundHandler = m.adapt(failWith[C](ErrNotFound))
	m.router.MethodNotAllowedHandler = m.adapt(failWith[C](ErrMethodNotAllowed))

	return m
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodGet)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodPost)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodHead)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.router.Handle(pattern, m.adapt(h))
	m.record(Route{Method: "*", Pattern: pattern})
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	m.router.Handle(pattern, m.adapt(h)).Methods(methods...)
	for _, method := range methods {
		m.record(Route{Method: method, Pattern: pattern})
	}
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.middlewares = append(m.middlewares, middlewares...)
}

func (m *mux[C]) Routes() []Route {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Route(nil), m.routes...)
}

func (m *mux[C]) record(r Route) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = append(m.routes, r)
}

func (m *mux[C]) chain(h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return handler.Chain(h, m.middlewares...)
}

// adapt turns a typed handler into an http.Handler.
func (m *mux[C]) adapt(h handler.HandlerFunc[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r, gmux.Vars(r))

		defer func() {
			if p := recover(); p != nil {
				perr := &panicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					m.logger.Error("panic after response written",
						"value", perr.value,
						"stack", string(perr.stack),
						"path", r.URL.Path,
						"method", r.Method,
						"status", ww.Status(),
					)
					return
				}
				m.errorHandler(ctx, perr)
			}
		}()

		resp := m.chain(h)(ctx)
		if resp == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
			m.errorHandler(ctx, err)
		}
	})
}

func failWith[C handler.Context](err error) handler.HandlerFunc[C] {
	return func(C) handler.Response {
		return func(http.ResponseWriter, *http.Request) error {
			return err
		}
	}
}
