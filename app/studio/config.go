package studio

import (
	"time"

	"github.com/dmitrymomot/qrstudio/core/server"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

type Config struct {
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"qrstudio"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DefaultSize   int `env:"QR_DEFAULT_SIZE" envDefault:"400"`
	DefaultMargin int `env:"QR_DEFAULT_MARGIN" envDefault:"2"`
	// Requests above MaxSize pixels are rejected.
	MaxSize int `env:"QR_MAX_SIZE" envDefault:"2048"`
	// Rendered PNGs kept in memory; 0 disables the cache.
	CacheSize int `env:"QR_CACHE_SIZE" envDefault:"256"`

	// Render routes allow RateBurst requests per client, refilled by RateLimit
	// every RateInterval. RateLimit 0 disables limiting.
	RateLimit    int           `env:"QR_RATE_LIMIT" envDefault:"2"`
	RateBurst    int           `env:"QR_RATE_BURST" envDefault:"40"`
	RateInterval time.Duration `env:"QR_RATE_INTERVAL" envDefault:"1s"`
}

// DefaultConfig mirrors the environment defaults.
func DefaultConfig() Config {
	return Config{
		Server:        server.DefaultConfig(),
		AppName:       "qrstudio",
		Env:           "development",
		LogLevel:      "info",
		DefaultSize:   qrcode.DefaultSize,
		DefaultMargin: qrcode.DefaultMargin,
		MaxSize:       2048,
		CacheSize:     256,
		RateLimit:     2,
		RateBurst:     40,
		RateInterval:  time.Second,
	}
}
