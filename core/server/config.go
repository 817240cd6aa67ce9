package server

import (
	"crypto/tls"
	"errors"
	"time"
)

// Defaults used by New and mirrored by the Config env defaults.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
)

// Config is the environment-driven server configuration.
type Config struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB

	// Both files must be set to enable HTTPS.
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
	}
}

// NewFromConfig builds a Server from cfg. Zero durations and sizes keep the
// package defaults; opts are applied after the config and win.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	fromConfig, err := cfg.options()
	if err != nil {
		return nil, err
	}
	return New(cfg.Addr, append(fromConfig, opts...)...), nil
}

func (c Config) options() ([]Option, error) {
	var opts []Option
	set := func(ok bool, opt Option) {
		if ok {
			opts = append(opts, opt)
		}
	}

	set(c.ReadTimeout > 0, WithReadTimeout(c.ReadTimeout))
	set(c.WriteTimeout > 0, WithWriteTimeout(c.WriteTimeout))
	set(c.IdleTimeout > 0, WithIdleTimeout(c.IdleTimeout))
	set(c.ShutdownTimeout > 0, WithShutdownTimeout(c.ShutdownTimeout))
	set(c.MaxHeaderBytes > 0, WithMaxHeaderBytes(c.MaxHeaderBytes))

	// TLS needs both halves of the key pair.
	if c.TLSCertFile == "" || c.TLSKeyFile == "" {
		return opts, nil
	}
	tlsConfig, err := loadTLSFromFiles(c.TLSCertFile, c.TLSKeyFile)
	if err != nil {
		return nil, err
	}
	return append(opts, WithTLS(tlsConfig)), nil
}

func loadTLSFromFiles(certFile, keyFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, errors.Join(ErrFailedLoadCert, err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
