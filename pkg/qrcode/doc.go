// Package qrcode renders QR codes as styled PNG images.
//
// Encoding (text to module matrix) is delegated to github.com/skip2/go-qrcode at the
// highest error correction level. This package plans pixel geometry and paints the
// matrix in one of four styles:
//
//   - standard: black square modules on white
//   - tinted: square modules in kiwi greens
//   - rounded: modules fused into blobs with rounded outer corners
//   - dotted: circular data modules, solid rounded position markers
//
// # Usage
//
// Generate raw PNG bytes in the standard style:
//
//	pngBytes, err := qrcode.Generate("https://example.com", 400)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Pick a style and margin explicitly:
//
//	r := qrcode.NewRenderer()
//	style, err := qrcode.ParseStyle("dots")
//	if err != nil {
//		return err
//	}
//	pngBytes, err := r.Render(text, style, 400, 2)
//	switch {
//	case errors.Is(err, qrcode.ErrEmptyInput):
//		// show the empty state
//	case err != nil:
//		var re *qrcode.RenderError
//		if errors.As(err, &re) {
//			log.Printf("render failed at %s: %v", re.Stage, re.Err)
//		}
//	}
//
// Data URIs for HTML embedding or clipboard use:
//
//	uri, err := r.RenderDataURI(text, qrcode.StyleRounded, 400, 2)
//	fmt.Printf(`<img src="%s" alt="QR Code">`, uri)
//
// # Geometry
//
// The module size is floor(size / (N + 2*margin)) pixels, where N is the matrix side,
// and the canvas is recomputed from it. Output images may therefore be slightly smaller
// than the requested size, but every module lands on whole pixels and edges stay crisp.
// A size that rounds the module below one pixel fails with ErrGeometryTooSmall, and a
// size above MaxCanvasSide fails with ErrCanvasTooLarge.
//
// # Concurrency
//
// Renderer is stateless after construction. Each call allocates its own canvas, so
// renders may run concurrently and identical arguments always produce identical bytes.
package qrcode
