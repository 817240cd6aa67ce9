// Package config reads typed configuration structs from the environment.
//
// Structs are described with caarlos0/env tags:
//
//	type Config struct {
//		Server  server.Config
//		MaxSize int `env:"QR_MAX_SIZE" envDefault:"2048"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first Load reads .env from the working directory (if present); values
// already in the process environment win. Each struct type is parsed once and
// served from a cache afterwards, so changes to the environment after the first
// Load of a type are not observed. MustLoad panics instead of returning.
package config
