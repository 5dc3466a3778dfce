package app

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger writes JSON logs, or text logs when env is "local".
func NewLogger(env, level string, w io.Writer) *slog.Logger {

	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if env == "local" {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
