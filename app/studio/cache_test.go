package studio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/app/studio"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("second render is a hit with identical bytes", func(t *testing.T) {
		t.Parallel()
		c, err := studio.NewCache(qrcode.NewRenderer(), 4)
		require.NoError(t, err)

		first, hit, err := c.Render("cached", qrcode.StyleRounded, 300, 2)
		require.NoError(t, err)
		assert.False(t, hit)

		second, hit, err := c.Render("cached", qrcode.StyleRounded, 300, 2)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("every argument is part of the key", func(t *testing.T) {
		t.Parallel()
		c, err := studio.NewCache(qrcode.NewRenderer(), 8)
		require.NoError(t, err)

		for _, call := range []struct {
			text   string
			style  qrcode.Style
			size   int
			margin int
		}{
			{"k", qrcode.StyleStandard, 300, 2},
			{"k2", qrcode.StyleStandard, 300, 2},
			{"k", qrcode.StyleDotted, 300, 2},
			{"k", qrcode.StyleStandard, 301, 2},
			{"k", qrcode.StyleStandard, 300, 3},
		} {
			_, hit, err := c.Render(call.text, call.style, call.size, call.margin)
			require.NoError(t, err)
			assert.False(t, hit, "%+v", call)
		}
		assert.Equal(t, 5, c.Len())
	})

	t.Run("failures are not cached", func(t *testing.T) {
		t.Parallel()
		c, err := studio.NewCache(qrcode.NewRenderer(), 4)
		require.NoError(t, err)

		_, _, err = c.Render("  ", qrcode.StyleStandard, 300, 2)
		assert.ErrorIs(t, err, qrcode.ErrEmptyInput)
		_, _, err = c.Render(strings.Repeat("x", 4000), qrcode.StyleStandard, 300, 2)
		assert.ErrorIs(t, err, qrcode.ErrEncodingFailure)
		assert.Zero(t, c.Len())
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		c, err := studio.NewCache(qrcode.NewRenderer(), 1)
		require.NoError(t, err)

		_, _, err = c.Render("a", qrcode.StyleStandard, 200, 2)
		require.NoError(t, err)
		_, _, err = c.Render("b", qrcode.StyleStandard, 200, 2)
		require.NoError(t, err)

		_, hit, err := c.Render("a", qrcode.StyleStandard, 200, 2)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, 1, c.Len())

		c.Purge()
		assert.Zero(t, c.Len())
	})

	t.Run("zero capacity disables caching", func(t *testing.T) {
		t.Parallel()
		c, err := studio.NewCache(qrcode.NewRenderer(), 0)
		require.NoError(t, err)

		_, _, err = c.Render("a", qrcode.StyleStandard, 200, 2)
		require.NoError(t, err)
		_, hit, err := c.Render("a", qrcode.StyleStandard, 200, 2)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Zero(t, c.Len())
		c.Purge()
	})
}
