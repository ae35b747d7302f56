package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables
// based on `env` field tags. On the first call it also loads a .env file
// from the working directory when one exists; a missing file is not an
// error.
//
// Example:
//
//	type Config struct {
//		MaxInputSize int `env:"SANITIZER_MAX_INPUT_SIZE" envDefault:"1048576"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// invalid environment; abort startup
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
