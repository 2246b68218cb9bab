package logger

import (
	"io"
	"log/slog"

	"github.com/vncsmyrnk/election/internal/config"
)

// New returns a human-readable debug logger for local runs and a JSON logger
// at info level in production. Any other env gets JSON at debug level.
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// Discard drops every record. Handy for tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
