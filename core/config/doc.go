// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// The package loads a .env file once on first use (missing files are fine)
// and parses environment variables into struct fields via the caarlos0/env
// library. Each configuration type is parsed only once per process; later
// calls return the cached value, so read-only configuration behaves like a
// process-wide immutable singleton.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/rtckit/core/config"
//
//	type APIConfig struct {
//		BaseURL string        `env:"RTC_API_URL" envDefault:"https://api.rtckit.io"`
//		Timeout time.Duration `env:"RTC_API_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
package config
