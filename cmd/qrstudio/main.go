// Command qrstudio serves and renders styled QR codes.
//
//	qrstudio serve
//	qrstudio render --style rounded --size 600 --out code.png "https://example.com"
//	qrstudio modes
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

type cli struct {
	Serve  serveCmd  `cmd:"" default:"1" help:"Run the HTTP service (configured from the environment)"`
	Render renderCmd `cmd:"" help:"Render a QR code to a PNG file or stdout"`
	Modes  modesCmd  `cmd:"" help:"List the available styles"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var params cli
	kctx := kong.Parse(&params,
		kong.Name("qrstudio"),
		kong.Description("Styled QR code renderer."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	kctx.FatalIfErrorf(kctx.Run())
}
