package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/qrstudio/app/studio"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

type serveCmd struct{}

func (serveCmd) Run(ctx context.Context) error {
	app, err := studio.NewApp()
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return app.Run(ctx)
}

var errSizeTooLarge = errors.New("size exceeds --max-size")

type renderCmd struct {
	Text    string `arg:"" help:"Text to encode"`
	Style   string `short:"s" default:"standard" help:"Style: standard, kiwi, rounded or dots"`
	Size    int    `default:"400" help:"Target image side in pixels"`
	Margin  int    `default:"2" help:"Quiet zone in modules"`
	MaxSize int    `name:"max-size" default:"2048" env:"QR_MAX_SIZE" help:"Largest accepted --size, 0 disables the check"`
	Out     string `short:"o" default:"-" help:"Output file, - for stdout"`
	DataURI bool   `name:"data-uri" help:"Write a data:image/png;base64 URI instead of PNG bytes"`
}

// Run writes nothing and succeeds for blank text.
func (c *renderCmd) Run(stdout io.Writer) error {
	style, err := qrcode.ParseStyle(c.Style)
	if err != nil {
		return err
	}

	if c.MaxSize > 0 && c.Size > c.MaxSize {
		return fmt.Errorf("%w: %d > %d", errSizeTooLarge, c.Size, c.MaxSize)
	}

	data, err := qrcode.NewRenderer().Render(c.Text, style, c.Size, c.Margin)
	if errors.Is(err, qrcode.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return err
	}

	if c.DataURI {
		data = []byte(qrcode.DataURI(data) + "\n")
	}

	if c.Out == "-" || c.Out == "" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(c.Out, data, 0o644)
}

type modesCmd struct {
	JSON bool `help:"Print as JSON"`
}

func (c *modesCmd) Run(stdout io.Writer) error {
	modes := qrcode.Modes()
	if c.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(modes)
	}
	for _, m := range modes {
		if _, err := fmt.Fprintf(stdout, "%-10s %-12s %s\n", m.ID, m.Name, m.Description); err != nil {
			return err
		}
	}
	return nil
}
