// Package slogx sets up the structured logger shared by the timeworld
// binaries and threads request-scoped loggers through contexts.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config describes the logger for one binary. Service, Version and Env are
// attached to every record so aggregated logs stay attributable.
type Config struct {
	Service string
	Version string
	Env     string // "dev" enables source locations
	Level   string // debug, info, warn, error (default info)
	Format  string // json or text (default json)
}

// New builds the logger and installs it as the slog default, so stray
// slog.Info calls in dependencies end up in the same stream.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.Env == "dev",
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
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
