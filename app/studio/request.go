package studio

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

var errTooLarge = errors.New("exceeds the maximum size")

type renderRequest struct {
	text   string
	style  qrcode.Style
	size   int
	margin int
}

// parseRequest reads text, style, size and margin from the query string.
// A {style} path variable takes precedence over the query parameter.
func (a *App) parseRequest(ctx handler.Context) (renderRequest, error) {
	q := ctx.Request().URL.Query()
	req := renderRequest{
		text:   q.Get("text"),
		style:  qrcode.StyleStandard,
		size:   a.config.DefaultSize,
		margin: a.config.DefaultMargin,
	}

	styleID := ctx.Param("style")
	if styleID == "" {
		styleID = q.Get("style")
	}
	if styleID != "" {
		s, err := qrcode.ParseStyle(styleID)
		if err != nil {
			return req, invalidParam("style", err)
		}
		req.style = s
	}

	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, invalidParam("size", err)
		}
		req.size = n
	}
	if a.config.MaxSize > 0 && req.size > a.config.MaxSize {
		return req, invalidParam("size", fmt.Errorf("%w: %d > %d", errTooLarge, req.size, a.config.MaxSize))
	}

	if v := q.Get("margin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, invalidParam("margin", err)
		}
		req.margin = n
	}

	return req, nil
}

func invalidParam(name string, err error) error {
	return response.ErrBadRequest.
		WithMessage("invalid " + name).
		WithDetails(map[string]any{"param": name}).
		WithError(err)
}
