// Package response builds handler.Response values: plain text, JSON, image
// bytes and downloads, plus the HTTPError type and the error handlers that
// turn handler errors into HTTP replies.
//
//	func show(ctx handler.Context) handler.Response {
//		data, err := render(ctx)
//		if err != nil {
//			return response.Error(response.ErrBadRequest.WithError(err))
//		}
//		return response.Image(data, "image/png")
//	}
//
// Errors returned from a Response reach the router's error handler.
// JSONErrorHandler renders them as {"code", "message", "details"}; errors with
// a StatusCode() int method keep their status, anything else becomes a 500.
package response
