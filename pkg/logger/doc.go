// Package logger provides a thin factory around Go's slog package adding
// functional options for configuration and helper attribute constructors.
//
// The package standardises structured logging across the module by exposing a
// single factory – New – that creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (json, text or dev)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//
// # Architecture
//
// New picks the concrete slog.Handler implementation based on the configured
// Format: slog.NewJSONHandler for json, slog.NewTextHandler for text, and a
// colorized tint handler (github.com/lmittmann/tint) for dev. Static
// attributes registered through WithAttr are attached with WithAttrs so they
// appear on every record.
//
// Helper constructors such as Error, Seed and Attempts live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming
// consistent across the codebase.
//
// # Usage
//
//	import "github.com/Roldans/FaMA/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevFormatter(),
//	        logger.WithLevel(slog.LevelDebug),
//	        logger.WithAttr(logger.Component("generator")),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("model generated",
//	        logger.Seed(res.Seed),
//	        logger.Attempts(res.Attempts),
//	    )
//	}
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
