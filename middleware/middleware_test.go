package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
	"github.com/dmitrymomot/qrstudio/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	newRouter := func(mw handler.Middleware[*router.Context]) router.Router[*router.Context] {
		r := router.New[*router.Context](router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]))
		r.Use(mw)
		r.Get("/", func(ctx *router.Context) handler.Response {
			id, _ := middleware.GetRequestID(ctx)
			return response.String(id)
		})
		return r
	}

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		newRouter(middleware.RequestID[*router.Context]()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get("X-Request-ID")
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses incoming id when configured", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace", "trace-1")

		w := httptest.NewRecorder()
		newRouter(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			HeaderName:  "X-Trace",
			UseExisting: true,
		})).ServeHTTP(w, req)

		assert.Equal(t, "trace-1", w.Header().Get("X-Trace"))
		assert.Equal(t, "trace-1", w.Body.String())
	})

	t.Run("ignores incoming id by default", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "spoofed")

		w := httptest.NewRecorder()
		newRouter(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Generator: func() string { return "generated" },
		})).ServeHTTP(w, req)

		assert.Equal(t, "generated", w.Body.String())
	})

	t.Run("header is present on error replies", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		newRouter(middleware.RequestID[*router.Context]()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		newRouter(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Skip: func(handler.Context) bool { return true },
		})).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, w.Header().Get("X-Request-ID"))
		assert.Empty(t, w.Body.String())
	})
}

func TestLogging(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (router.Router[*router.Context], *bytes.Buffer) {
		t.Helper()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		r := router.New[*router.Context](router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]))
		r.Use(
			middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{Generator: func() string { return "req-1" }}),
			middleware.LoggingWithLogger[*router.Context](log),
		)
		r.Get("/ok", func(*router.Context) handler.Response { return response.String("hello") })
		r.Get("/bad", func(*router.Context) handler.Response {
			return response.Error(response.ErrBadRequest.WithMessage("size must be positive"))
		})
		r.Get("/boom", func(*router.Context) handler.Response {
			return response.Error(response.ErrInternalServerError)
		})
		return r, &buf
	}

	record := func(t *testing.T, buf *bytes.Buffer) map[string]any {
		t.Helper()
		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		return rec
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		r, buf := setup(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		rec := record(t, buf)
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "http", rec["component"])
		assert.Equal(t, "GET", rec["method"])
		assert.Equal(t, "/ok", rec["path"])
		assert.EqualValues(t, 200, rec["status_code"])
		assert.EqualValues(t, 5, rec["bytes_out"])
		assert.Equal(t, "req-1", rec["request_id"])
		assert.NotContains(t, rec, "error")
	})

	t.Run("client error", func(t *testing.T) {
		t.Parallel()
		r, buf := setup(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		rec := record(t, buf)
		assert.Equal(t, "WARN", rec["level"])
		assert.EqualValues(t, 400, rec["status_code"])
		assert.Equal(t, "size must be positive", rec["error"])
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()
		r, buf := setup(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		rec := record(t, buf)
		assert.Equal(t, "ERROR", rec["level"])
		assert.EqualValues(t, 500, rec["status_code"])
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		r, buf := setup(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		rec := record(t, buf)
		assert.EqualValues(t, 404, rec["status_code"])
	})
}
