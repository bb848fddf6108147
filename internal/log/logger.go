// Package log builds the structured loggers used by fqtrim. Logs always go
// to a caller-supplied writer (stderr in the CLI) so stdout stays free for
// the run summary.
package log

import (
	"io"
	"log/slog"
	"strings"

	"fqtrim/internal/config"
)

// NewLogger creates a logger from configuration. Quiet raises the level to
// WARN regardless of the configured level.
func NewLogger(w io.Writer, cfg config.AppConfig) *slog.Logger {
	level := ParseLevel(cfg.LogLevel())
	if cfg.Quiet() && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	return NewLoggerWithWriter(w, cfg.LogFormat(), level)
}

// NewLoggerWithWriter creates a logger that writes to w.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newTerminalHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps DEBUG, INFO, WARN/WARNING and ERROR to slog levels;
// anything else is INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
