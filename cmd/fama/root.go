package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Roldans/FaMA/pkg/config"
	"github.com/Roldans/FaMA/pkg/logger"
)

type appConfig struct {
	LogLevel  string `env:"FAMA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FAMA_LOG_FORMAT" envDefault:"text"`
}

var (
	logLevelFlag  string
	logFormatFlag string

	rootCmd = &cobra.Command{
		Use:   "fama",
		Short: "Generate feature models with exact, incrementally maintained product sets",
		Long: `fama builds random feature models whose complete product set is maintained
step by step during construction, giving exact product counts without a
post-hoc analysis pass. Generated models serve as ground-truth corpora for
benchmarking feature model analysis tools.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level: debug, info, warn or error (env FAMA_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"log format: json, text or dev (env FAMA_LOG_FORMAT)")
}

// setupLogging builds the process logger from environment configuration,
// with explicit flags taking priority.
func setupLogging(cmd *cobra.Command) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if logFormatFlag != "" {
		cfg.LogFormat = logFormatFlag
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	logger.SetAsDefault(logger.New(
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
	))
	return nil
}
