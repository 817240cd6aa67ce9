package qrcode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput signals blank text. Callers treat it as the "no image" state
	// rather than a failure.
	ErrEmptyInput = errors.New("qrcode: empty input")

	ErrUnknownStyle         = errors.New("qrcode: unknown style")
	ErrGeometryTooSmall     = errors.New("qrcode: target size too small for grid and margin")
	ErrCanvasTooLarge       = errors.New("qrcode: target size exceeds the canvas limit")
	ErrInvalidMargin        = errors.New("qrcode: margin must not be negative")
	ErrInvalidGrid          = errors.New("qrcode: invalid module grid")
	ErrEncodingFailure      = errors.New("qrcode: encoding failed")
	ErrSerializationFailure = errors.New("qrcode: serialization failed")
)

// Stage names the pipeline step a render failed in.
type Stage string

const (
	StageEncode    Stage = "encode"
	StageStyle     Stage = "style"
	StagePlan      Stage = "plan"
	StageRasterize Stage = "rasterize"
	StageSerialize Stage = "serialize"
)

// RenderError is returned by Renderer for every failure after input validation.
// It never accompanies a partially drawn image.
type RenderError struct {
	Stage Stage
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("qrcode: render failed at %s stage: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) error {
	return &RenderError{Stage: stage, Err: err}
}
