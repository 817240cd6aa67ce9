// Package handler defines the request-processing contract shared by router,
// response and the application handlers.
//
// A HandlerFunc receives a typed Context and returns a Response; the Response
// writes headers and body and returns any rendering error to the router's
// ErrorHandler. Middleware wraps HandlerFunc values of the same context type.
//
//	func modes(ctx handler.Context) handler.Response {
//		return response.JSON(qrcode.Modes())
//	}
package handler
