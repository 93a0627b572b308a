package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads one or more named .env files into the process environment.
// Existing environment variables keep priority over file values. Unlike the
// implicit default-file load in Load, a missing file here is an error because
// the caller asked for it by name.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into the provided configuration struct.
//
// The first call attempts to load the default .env file from the current
// working directory; a missing default file is fine. The struct is then
// populated from the process environment based on `env` field tags. Every
// call re-parses the environment, so changing variables between calls (for
// example with t.Setenv in tests) takes effect on the next Load.
//
// Example:
//
//	type GeneratorConfig struct {
//		LogLevel string `env:"FAMA_LOG_LEVEL" envDefault:"info"`
//		Seed     int64  `env:"FAMA_SEED" envDefault:"1"`
//	}
//
//	var cfg GeneratorConfig
//	err := config.Load(&cfg)
//	if err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
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

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var cfg GeneratorConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
