package qrcode

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Shape ratios relative to the module size.
const (
	roundedRadius = 0.4
	markerRadius  = 0.3
	dotRadius     = 0.45
)

// kappa places cubic Bézier control points so that four segments approximate a circle.
const kappa = 0.5522847498

// Rasterize paints g onto a fresh surface of plan.CanvasSide pixels using the style's
// painter. The surface is filled with the light color before any module is drawn.
func Rasterize(g Grid, plan RenderPlan, style Style, scheme ColorScheme) (*Surface, error) {
	s := NewSurface(plan.CanvasSide, scheme.Light)

	switch style {
	case StyleStandard, StyleTinted:
		PaintFlat(s, g, plan, scheme.Dark)
	case StyleRounded:
		PaintRounded(s, g, plan, scheme.Dark)
	case StyleDotted:
		PaintDotted(s, g, plan, scheme.Dark)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}

	return s, nil
}

// PaintFlat fills one solid square per dark module.
func PaintFlat(s *Surface, g Grid, plan RenderPlan, c color.Color) {
	forEachDark(g, plan, func(_, _, x, y int) {
		s.FillRect(image.Rect(x, y, x+plan.PixelSize, y+plan.PixelSize), c)
	})
}

// PaintRounded draws every dark module as a rounded square whose corners are decided
// one at a time: a corner stays square when either module sharing that corner's edges
// is dark, and is rounded only when both are light. Touching modules therefore fuse
// into one blob without seams.
//
// The rule is symmetric in both axes. A module with only a vertical neighbour keeps
// its two corners on that side square and rounds the other two; it does not arc the
// corners along the shared edge.
func PaintRounded(s *Surface, g Grid, plan RenderPlan, c color.Color) {
	src := image.NewUniform(c)
	n := g.Side()

	forEachDark(g, plan, func(row, col, x, y int) {
		top := row > 0 && g.Get(row-1, col)
		right := col < n-1 && g.Get(row, col+1)
		bottom := row < n-1 && g.Get(row+1, col)
		left := col > 0 && g.Get(row, col-1)

		rounded := corners{
			topLeft:     !top && !left,
			topRight:    !top && !right,
			bottomRight: !bottom && !right,
			bottomLeft:  !bottom && !left,
		}
		s.fillCell(x, y, plan.PixelSize, src, roundedSquare(rounded, roundedRadius))
	})
}

// PaintDotted draws data modules as circles and finder pattern modules as rounded
// squares, keeping the three position markers solid for scanners.
func PaintDotted(s *Surface, g Grid, plan RenderPlan, c color.Color) {
	src := image.NewUniform(c)
	n := g.Side()
	marker := roundedSquare(corners{true, true, true, true}, markerRadius)
	dot := circle(dotRadius)

	forEachDark(g, plan, func(row, col, x, y int) {
		if inPositionMarker(row, col, n) {
			s.fillCell(x, y, plan.PixelSize, src, marker)
			return
		}
		s.fillCell(x, y, plan.PixelSize, src, dot)
	})
}

// forEachDark calls fn with the grid position and top-left pixel of every dark module.
func forEachDark(g Grid, plan RenderPlan, fn func(row, col, x, y int)) {
	n := g.Side()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !g.Get(row, col) {
				continue
			}
			fn(row, col, plan.Offset+col*plan.PixelSize, plan.Offset+row*plan.PixelSize)
		}
	}
}

// corners marks which corners of a cell are rounded.
type corners struct {
	topLeft, topRight, bottomRight, bottomLeft bool
}

// roundedSquare traces the full cell clockwise, replacing each rounded corner with a
// quarter circle of radius ratio*size.
func roundedSquare(c corners, ratio float32) shape {
	return func(z *vector.Rasterizer, size float32) {
		r := ratio * size
		k := kappa * r

		if c.topLeft {
			z.MoveTo(0, r)
			z.CubeTo(0, r-k, r-k, 0, r, 0)
		} else {
			z.MoveTo(0, 0)
		}

		if c.topRight {
			z.LineTo(size-r, 0)
			z.CubeTo(size-r+k, 0, size, r-k, size, r)
		} else {
			z.LineTo(size, 0)
		}

		if c.bottomRight {
			z.LineTo(size, size-r)
			z.CubeTo(size, size-r+k, size-r+k, size, size-r, size)
		} else {
			z.LineTo(size, size)
		}

		if c.bottomLeft {
			z.LineTo(r, size)
			z.CubeTo(r-k, size, 0, size-r+k, 0, size-r)
		} else {
			z.LineTo(0, size)
		}

		z.ClosePath()
	}
}

// circle traces a circle of radius ratio*size centered in the cell.
func circle(ratio float32) shape {
	return func(z *vector.Rasterizer, size float32) {
		r := ratio * size
		k := kappa * r
		cx, cy := size/2, size/2

		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
		z.ClosePath()
	}
}
