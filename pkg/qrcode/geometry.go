package qrcode

import "fmt"

// Grid side bounds for QR versions 1 through 40.
const (
	MinGridSide = 21
	MaxGridSide = 177
)

// MaxCanvasSide caps the requested image side in pixels. Larger targets fail with
// ErrCanvasTooLarge before any pixel buffer is allocated.
const MaxCanvasSide = 16384

// RenderPlan holds the pixel geometry of one render.
type RenderPlan struct {
	PixelSize  int // side of one module in pixels
	CanvasSide int // side of the whole image in pixels
	Offset     int // margin in pixels
}

// Plan computes pixel geometry for a grid of the given side drawn inside a square of
// targetSize pixels with a margin measured in modules.
//
// The module size is rounded down and the canvas recomputed from it, so the canvas may
// be smaller than targetSize but every module edge falls on a whole pixel. A margin too
// wide for any module to fit in MaxCanvasSide fails with ErrGeometryTooSmall.
func Plan(targetSize, marginModules, gridSide int) (RenderPlan, error) {
	if marginModules < 0 {
		return RenderPlan{}, fmt.Errorf("%w: %d", ErrInvalidMargin, marginModules)
	}
	if err := validateSide(gridSide); err != nil {
		return RenderPlan{}, err
	}
	if targetSize > MaxCanvasSide {
		return RenderPlan{}, fmt.Errorf("%w: %dpx > %dpx", ErrCanvasTooLarge, targetSize, MaxCanvasSide)
	}
	// Bounding the margin first keeps every product below MaxCanvasSide.
	if marginModules > (MaxCanvasSide-gridSide)/2 {
		return RenderPlan{}, fmt.Errorf("%w: margin of %d modules", ErrGeometryTooSmall, marginModules)
	}

	modules := gridSide + 2*marginModules
	pixelSize := 0
	if targetSize > 0 {
		pixelSize = targetSize / modules
	}
	if pixelSize < 1 {
		return RenderPlan{}, fmt.Errorf("%w: %dpx for %d modules", ErrGeometryTooSmall, targetSize, modules)
	}

	return RenderPlan{
		PixelSize:  pixelSize,
		CanvasSide: pixelSize * modules,
		Offset:     marginModules * pixelSize,
	}, nil
}

func validateSide(side int) error {
	if side < MinGridSide || side > MaxGridSide || side%2 == 0 {
		return fmt.Errorf("%w: side %d", ErrInvalidGrid, side)
	}
	return nil
}
