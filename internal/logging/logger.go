package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls logger construction.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
	RunID   string
}

// NewLogger returns a structured logger writing to stderr.
// Stdout is reserved for the report itself.
func NewLogger(cfg Config) *slog.Logger {
	return newLoggerTo(os.Stderr, cfg)
}

func newLoggerTo(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	var attrs []any
	if cfg.Service != "" {
		attrs = append(attrs, slog.String(FieldService, cfg.Service))
	}
	if cfg.Version != "" {
		attrs = append(attrs, slog.String(FieldVersion, cfg.Version))
	}
	if cfg.RunID != "" {
		attrs = append(attrs, slog.String(FieldRunID, cfg.RunID))
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}
	return logger
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
