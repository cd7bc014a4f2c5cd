// Package config loads application configuration from environment
// variables, with an optional .env file for development. It is a thin,
// type-safe wrapper over github.com/joho/godotenv and
// github.com/caarlos0/env: declare a struct with env tags, call Load once
// at startup, and treat the result as read-only for the life of the
// process.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the struct from the process environment based on its env
// tags. The default .env file, if present, is read into the environment
// exactly once per process before the first parse; a missing .env is not an
// error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure, for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
