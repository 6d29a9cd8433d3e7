// Package logger builds configured log/slog loggers with a small functional
// options API.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithAttr(slog.String("service", "forms")),
//	)
//
// The JSON format targets production log aggregation; the text format is for
// human consumption during development. Invalid formats panic at construction
// so misconfiguration surfaces at startup, not at the first log call.
package logger
