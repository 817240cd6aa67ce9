package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// Defaults used by the package-level helpers and the application layer.
const (
	DefaultSize   = 400
	DefaultMargin = 2
)

// encodeLevel is used for every style so they share the same damage tolerance.
const encodeLevel = LevelHighest

const dataURIPrefix = "data:image/png;base64,"

// Renderer turns text into styled QR images.
// It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	encoder Encoder
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEncoder replaces the matrix source. Nil is ignored.
func WithEncoder(e Encoder) Option {
	return func(r *Renderer) {
		if e != nil {
			r.encoder = e
		}
	}
}

// NewRenderer creates a Renderer backed by SkipEncoder unless overridden.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{encoder: SkipEncoder{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderImage runs the pipeline up to rasterization and returns the canvas.
// Blank text returns ErrEmptyInput before the encoder is consulted.
func (r *Renderer) RenderImage(text string, style Style, size, margin int) (*image.RGBA, error) {
	s, err := r.rasterize(text, style, size, margin)
	if err != nil {
		return nil, err
	}
	return s.Image(), nil
}

// Render returns the QR code for text as PNG bytes.
//
// Blank text yields ErrEmptyInput, which callers should treat as "no image".
// Every other failure is a *RenderError naming the stage that failed.
func (r *Renderer) Render(text string, style Style, size, margin int) ([]byte, error) {
	s, err := r.rasterize(text, style, size, margin)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return nil, stageError(StageSerialize, fmt.Errorf("%w: %w", ErrSerializationFailure, err))
	}
	return buf.Bytes(), nil
}

// RenderDataURI returns the PNG wrapped in a base64 data URI, ready for an <img> tag
// or a clipboard write.
func (r *Renderer) RenderDataURI(text string, style Style, size, margin int) (string, error) {
	png, err := r.Render(text, style, size, margin)
	if err != nil {
		return "", err
	}
	return DataURI(png), nil
}

func (r *Renderer) rasterize(text string, style Style, size, margin int) (*Surface, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	grid, err := r.encoder.Encode(text, encodeLevel)
	if err != nil {
		return nil, stageError(StageEncode, fmt.Errorf("%w: %w", ErrEncodingFailure, err))
	}

	scheme, err := Resolve(style)
	if err != nil {
		return nil, stageError(StageStyle, err)
	}

	plan, err := Plan(size, margin, grid.Side())
	if err != nil {
		return nil, stageError(StagePlan, err)
	}

	s, err := Rasterize(grid, plan, style, scheme)
	if err != nil {
		return nil, stageError(StageRasterize, err)
	}
	return s, nil
}

// DataURI encodes PNG bytes as a data URI.
func DataURI(png []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png)
}

var defaultRenderer = NewRenderer()

// Generate returns a standard-style PNG of content with the default margin.
// A non-positive size selects DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return defaultRenderer.Render(content, StyleStandard, size, DefaultMargin)
}

// GenerateBase64Image is Generate returning a data URI.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return DataURI(png), nil
}
