// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the process cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type GeneratorConfig struct {
//	    LogLevel  string `env:"FAMA_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"FAMA_LOG_FORMAT" envDefault:"text"`
//	    Seed      int64  `env:"FAMA_SEED" envDefault:"1"`
//	}
//
// Then populate the struct:
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Each call to Load parses the current process environment, so tests can
// adjust variables with t.Setenv and simply load again.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly named .env file could not be read.
//   - `ErrNilPointer` – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
