// Package router maps HTTP routes to typed handlers on top of gorilla/mux.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/modes", listModes)
//	r.Get("/qr/{style}.png", renderStyle)
//
// Path variables use gorilla/mux syntax and are read with ctx.Param.
// Unknown paths and wrong methods reach the error handler as ErrNotFound and
// ErrMethodNotAllowed, both of which report their status via StatusCode().
// Panics are recovered and passed on as PanicError.
//
// Custom context types supply WithContextFactory; without it only *Context works.
package router
