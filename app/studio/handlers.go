package studio

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"time"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/logger"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

const contentTypePNG = "image/png"

// qrPayload is the body of /qr.json.
type qrPayload struct {
	Style   string `json:"style"`
	Size    int    `json:"size"`
	DataURI string `json:"data_uri"`
}

func (a *App) qrImage(ctx *router.Context) handler.Response {
	_, data, err := a.renderFromRequest(ctx)
	if err != nil {
		return a.failure(err)
	}
	return response.Image(data, contentTypePNG)
}

func (a *App) qrDownload(ctx *router.Context) handler.Response {
	req, data, err := a.renderFromRequest(ctx)
	if err != nil {
		return a.failure(err)
	}
	return response.Attachment(data, qrcode.DownloadFilename(req.style, a.now()), contentTypePNG)
}

func (a *App) qrJSON(ctx *router.Context) handler.Response {
	req, data, err := a.renderFromRequest(ctx)
	if err != nil {
		return a.failure(err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return response.Error(response.ErrInternalServerError.WithError(err))
	}

	mode, err := qrcode.ModeOf(req.style)
	if err != nil {
		return response.Error(renderFailure(err))
	}

	return response.JSON(qrPayload{
		Style:   mode.ID,
		Size:    cfg.Width,
		DataURI: qrcode.DataURI(data),
	})
}

func (a *App) listModes(ctx *router.Context) handler.Response {
	return response.JSON(qrcode.Modes())
}

// failure turns blank input into 204 and everything else into an error reply.
func (a *App) failure(err error) handler.Response {
	if errors.Is(err, qrcode.ErrEmptyInput) {
		return response.NoContent()
	}
	return response.Error(err)
}

func (a *App) renderFromRequest(ctx *router.Context) (renderRequest, []byte, error) {
	req, err := a.parseRequest(ctx)
	if err != nil {
		return req, nil, err
	}
	data, err := a.render(ctx, req)
	return req, data, err
}

func (a *App) render(ctx context.Context, req renderRequest) ([]byte, error) {
	start := time.Now()
	data, hit, err := a.cache.Render(req.text, req.style, req.size, req.margin)

	switch {
	case errors.Is(err, qrcode.ErrEmptyInput):
		a.logger.DebugContext(ctx, "blank text, nothing rendered",
			logger.Component("studio"),
			logger.Result("empty"),
		)
		return nil, err
	case err != nil:
		a.logger.WarnContext(ctx, "qr render failed",
			logger.Component("studio"),
			logger.Style(req.style.String()),
			logger.Size(req.size),
			logger.Stage(stageOf(err)),
			logger.Error(err),
		)
		return nil, renderFailure(err)
	}

	a.logger.DebugContext(ctx, "qr rendered",
		logger.Component("studio"),
		logger.Style(req.style.String()),
		logger.Size(req.size),
		logger.Cache(hit),
		logger.Elapsed(start),
	)
	return data, nil
}

// renderFailure maps renderer errors to HTTP errors. Bad input is a 400;
// a failure to produce the PNG from a valid request is a 500.
func renderFailure(err error) error {
	base := response.ErrBadRequest
	if errors.Is(err, qrcode.ErrSerializationFailure) || errors.Is(err, qrcode.ErrInvalidGrid) {
		base = response.ErrInternalServerError
	}

	httpErr := base.WithMessage(err.Error())
	if stage := stageOf(err); stage != "" {
		httpErr = httpErr.WithDetails(map[string]any{"stage": stage})
	}
	return httpErr
}

func stageOf(err error) string {
	var re *qrcode.RenderError
	if errors.As(err, &re) {
		return string(re.Stage)
	}
	return ""
}
