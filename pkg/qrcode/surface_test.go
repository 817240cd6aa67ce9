package qrcode_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

func TestSurface(t *testing.T) {
	t.Parallel()

	t.Run("starts filled with background", func(t *testing.T) {
		t.Parallel()
		s := qrcode.NewSurface(30, light)
		assert.Equal(t, 30, s.Side())
		for _, p := range []image.Point{{0, 0}, {29, 29}, {15, 7}} {
			assert.Equal(t, light, s.Image().RGBAAt(p.X, p.Y))
		}
	})

	t.Run("fill rect is crisp", func(t *testing.T) {
		t.Parallel()
		s := qrcode.NewSurface(30, light)
		s.FillRect(image.Rect(10, 10, 20, 20), dark)

		img := s.Image()
		assert.Equal(t, dark, img.RGBAAt(10, 10))
		assert.Equal(t, dark, img.RGBAAt(19, 19))
		assert.Equal(t, light, img.RGBAAt(9, 10))
		assert.Equal(t, light, img.RGBAAt(20, 19))
	})

	t.Run("encodes png", func(t *testing.T) {
		t.Parallel()
		s := qrcode.NewSurface(17, dark)

		var buf bytes.Buffer
		require.NoError(t, s.EncodePNG(&buf))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 17, 17), img.Bounds())
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		t.Parallel()
		s := qrcode.NewSurface(17, dark)
		assert.Error(t, s.EncodePNG(failingWriter{}))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
