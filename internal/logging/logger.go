// Package logging builds the application's slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Writer io.Writer
}

// New constructs a slog logger writing human-readable output. The clock
// repaints stdout, so diagnostics belong on a separate writer (stderr).
func New(opts Options) *slog.Logger {
	handler := slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	})
	return slog.New(handler)
}

// ParseLevel maps a config string to a slog level, defaulting to warn so
// the clock face stays clean.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	case "warn", "":
		return slog.LevelWarn
	default:
		return slog.LevelWarn
	}
}
