// Package logger builds slog loggers with the module's conventions baked
// in: JSON output by default, level and destination set through functional
// options, static attributes attached at construction.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "billing")),
//	)
package logger
