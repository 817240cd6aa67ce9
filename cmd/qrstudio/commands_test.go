package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

func TestRenderCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes png to stdout", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		cmd := renderCmd{Text: "cli", Style: "dots", Size: 300, Margin: 2, Out: "-"}
		require.NoError(t, cmd.Run(&out))

		want, err := qrcode.NewRenderer().Render("cli", qrcode.StyleDotted, 300, 2)
		require.NoError(t, err)
		assert.Equal(t, want, out.Bytes())
	})

	t.Run("writes to file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "code.png")
		cmd := renderCmd{Text: "file", Style: "rounded", Size: 200, Margin: 1, Out: path}
		require.NoError(t, cmd.Run(&bytes.Buffer{}))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		_, err = png.DecodeConfig(f)
		assert.NoError(t, err)
	})

	t.Run("data uri", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		cmd := renderCmd{Text: "uri", Style: "standard", Size: 200, Margin: 2, DataURI: true}
		require.NoError(t, cmd.Run(&out))
		assert.True(t, strings.HasPrefix(out.String(), "data:image/png;base64,"))
	})

	t.Run("blank text writes nothing", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		cmd := renderCmd{Text: "  ", Style: "standard", Size: 200, Margin: 2}
		require.NoError(t, cmd.Run(&out))
		assert.Zero(t, out.Len())
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		err := (&renderCmd{Text: "x", Style: "neon", Size: 200}).Run(&bytes.Buffer{})
		assert.ErrorIs(t, err, qrcode.ErrUnknownStyle)

		err = (&renderCmd{Text: "x", Style: "standard", Size: 5}).Run(&bytes.Buffer{})
		assert.ErrorIs(t, err, qrcode.ErrGeometryTooSmall)

		err = (&renderCmd{Text: "x", Style: "standard", Size: 1 << 40, MaxSize: 2048}).Run(&bytes.Buffer{})
		assert.ErrorIs(t, err, errSizeTooLarge)

		err = (&renderCmd{Text: "x", Style: "rounded", Size: 1 << 40}).Run(&bytes.Buffer{})
		assert.ErrorIs(t, err, qrcode.ErrCanvasTooLarge)

		var out bytes.Buffer
		err = (&renderCmd{Text: "x", Style: "dots", Size: 400, Margin: math.MaxInt}).Run(&out)
		assert.ErrorIs(t, err, qrcode.ErrGeometryTooSmall)
		assert.Zero(t, out.Len())
	})
}

func TestModesCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, (&modesCmd{}).Run(&out))
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "kiwi")

	out.Reset()
	require.NoError(t, (&modesCmd{JSON: true}).Run(&out))
	var modes []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &modes))
	assert.Len(t, modes, 4)
}

func TestCLIParse(t *testing.T) {
	t.Parallel()

	var params cli
	parser, err := kong.New(&params, kong.Name("qrstudio"))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"render", "-s", "kiwi", "--size", "600", "-o", "out.png", "hello"})
	require.NoError(t, err)
	assert.Equal(t, "render <text>", kctx.Command())
	assert.Equal(t, "hello", params.Render.Text)
	assert.Equal(t, "kiwi", params.Render.Style)
	assert.Equal(t, 600, params.Render.Size)
	assert.Equal(t, 2, params.Render.Margin)
	assert.False(t, params.Render.DataURI)
	assert.Equal(t, 2048, params.Render.MaxSize)
}
