package qrcode_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want qrcode.Style
	}{
		{"standard", qrcode.StyleStandard},
		{"tinted", qrcode.StyleTinted},
		{"kiwi", qrcode.StyleTinted},
		{"rounded", qrcode.StyleRounded},
		{"dotted", qrcode.StyleDotted},
		{"dots", qrcode.StyleDotted},
		{"  Rounded ", qrcode.StyleRounded},
		{"DOTS", qrcode.StyleDotted},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := qrcode.ParseStyle(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown identifiers fail", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "square", "dot", "kiwi-style"} {
			_, err := qrcode.ParseStyle(in)
			assert.ErrorIs(t, err, qrcode.ErrUnknownStyle, "input %q", in)
		}
	})
}

func TestStyleString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "standard", qrcode.StyleStandard.String())
	assert.Equal(t, "tinted", qrcode.StyleTinted.String())
	assert.Equal(t, "rounded", qrcode.StyleRounded.String())
	assert.Equal(t, "dotted", qrcode.StyleDotted.String())
	assert.Equal(t, "style(9)", qrcode.Style(9).String())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	opaque := func(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

	tests := []struct {
		style qrcode.Style
		want  qrcode.ColorScheme
	}{
		{qrcode.StyleStandard, qrcode.ColorScheme{Dark: opaque(0x00, 0x00, 0x00), Light: opaque(0xff, 0xff, 0xff)}},
		{qrcode.StyleTinted, qrcode.ColorScheme{Dark: opaque(0x3f, 0xa0, 0x5f), Light: opaque(0xf4, 0xfb, 0xf6)}},
		{qrcode.StyleRounded, qrcode.ColorScheme{Dark: opaque(0x2d, 0x78, 0x49), Light: opaque(0xff, 0xff, 0xff)}},
		{qrcode.StyleDotted, qrcode.ColorScheme{Dark: opaque(0x1e, 0x50, 0x33), Light: opaque(0xe6, 0xf6, 0xeb)}},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			t.Parallel()
			got, err := qrcode.Resolve(tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := qrcode.Resolve(tt.style)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}

	t.Run("unknown style fails instead of defaulting", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Resolve(qrcode.Style(4))
		assert.ErrorIs(t, err, qrcode.ErrUnknownStyle)
	})
}
