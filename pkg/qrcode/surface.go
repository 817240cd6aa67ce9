package qrcode

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
)

// Surface is a square RGBA canvas owned by a single render call.
// It is not safe for concurrent use.
type Surface struct {
	img *image.RGBA
	z   vector.Rasterizer
}

// NewSurface allocates a side×side canvas filled with background.
func NewSurface(side int, background color.Color) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Surface{img: img}
}

// Side returns the canvas side in pixels.
func (s *Surface) Side() int {
	return s.img.Bounds().Dx()
}

// Image exposes the underlying pixels.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// FillRect paints r with a solid color, without anti-aliasing.
func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// shape traces a closed path inside a size×size cell, in cell-local coordinates.
type shape func(z *vector.Rasterizer, size float32)

// fillCell rasterizes sh into the size×size cell whose top-left pixel is (x, y) and
// composites it over the canvas with src. The rasterizer is sized to the cell so the
// cost does not grow with the canvas.
func (s *Surface) fillCell(x, y, size int, src image.Image, sh shape) {
	s.z.Reset(size, size)
	sh(&s.z, float32(size))
	s.z.Draw(s.img, image.Rect(x, y, x+size, y+size), src, image.Point{})
}

// EncodePNG writes the canvas as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, s.img)
}
