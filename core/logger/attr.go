package logger

import (
	"log/slog"
	"time"
)

// Helpers return an empty slog.Attr for zero inputs where that makes sense, so
// log.Info("msg", logger.Error(err)) needs no nil check. slog drops empty attrs.

// Group nests attributes under one key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error logs err under "error". Nil errors yield an empty attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration logs d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the time since start under "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID logs an HTTP request ID. Empty IDs are skipped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Result is "success", "failure", "empty" and the like.
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Style logs a QR style name.
func Style(name string) slog.Attr {
	return slog.String("style", name)
}

// Size logs a requested image size in pixels.
func Size(px int) slog.Attr {
	return slog.Int("size", px)
}

// Stage logs the render pipeline stage that failed. Empty stages are skipped.
func Stage(stage string) slog.Attr {
	if stage == "" {
		return slog.Attr{}
	}
	return slog.String("stage", stage)
}

// Cache logs whether a lookup hit.
func Cache(hit bool) slog.Attr {
	if hit {
		return slog.String("cache", "hit")
	}
	return slog.String("cache", "miss")
}
