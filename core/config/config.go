package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first call for a given
// type reads the environment (after a one-time .env load); subsequent calls
// for the same type return the cached value unchanged, regardless of later
// environment mutations.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is the normal production case.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)

	mu.RLock()
	cached, ok := cache[t]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	mu.Lock()
	// First writer wins so concurrent loaders observe one consistent value.
	if cached, ok := cache[t]; ok {
		parsed = cached.(T)
	} else {
		cache[t] = parsed
	}
	mu.Unlock()

	*cfg = parsed
	return nil
}

// MustLoad is Load that panics on failure. Useful during startup where a
// missing required variable should stop the process immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
