package router

import (
	"net/http"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// Router dispatches requests to typed handlers.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])

	// Handle matches every method.
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware applied to every route, including ones
	// registered earlier and the not-found and method-not-allowed replies.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a registered route. Method is "*" for Handle routes.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. Custom context types need WithContextFactory.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
