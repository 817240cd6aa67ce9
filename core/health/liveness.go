package health

import (
	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
)

// Liveness answers "ALIVE" while the process is up. It checks nothing else.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// NoContent answers 204 with no body.
func NoContent[C handler.Context](C) handler.Response {
	return response.NoContent()
}
