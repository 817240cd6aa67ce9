package response

import (
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// Image serves in-memory image bytes inline.
func Image(data []byte, contentType string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(data)
		return err
	}
}

// Attachment serves in-memory data as a file download. An empty contentType
// is detected from the filename extension, falling back to application/octet-stream.
func Attachment(data []byte, filename string, contentType string) handler.Response {
	// Newlines and quotes would break out of the header value.
	name := strings.NewReplacer("\n", "", "\r", "", "\"", "'").Replace(filename)

	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))

		resolved := contentType
		if resolved == "" {
			resolved = mime.TypeByExtension(filepath.Ext(name))
			if resolved == "" {
				resolved = "application/octet-stream"
			}
		}
		w.Header().Set("Content-Type", resolved)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))

		w.WriteHeader(http.StatusOK)
		_, err := w.Write(data)
		return err
	}
}
