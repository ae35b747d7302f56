// Package logger is a small factory for log/slog loggers with JSON or
// text output, a level, and static attributes:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
// The sanitization engine accepts such a logger for debug-level
// diagnostics (fallback dispatch, input truncation); everything else in
// this module is silent by design.
package logger
