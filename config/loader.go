package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// LoadEnv loads environment variables from the given files before any
// configuration is parsed. Later files do not override variables already set.
// Calling LoadEnv also suppresses the implicit default .env load.
func LoadEnv(paths ...string) error {
	var loadErr error
	defaultEnvLoaded.Do(func() {
		if err := godotenv.Load(paths...); err != nil {
			loadErr = fmt.Errorf("%w: %v", ErrLoadingEnvFile, err)
		}
	})
	return loadErr
}

// Load parses environment variables into the provided configuration struct.
// Each distinct struct type is parsed once per process; subsequent calls for
// the same type return the cached value.
//
// The default .env file is loaded first, if present.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}

// ResetCache drops all cached configuration values. Primarily for tests that
// mutate the environment between loads.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]any)
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
