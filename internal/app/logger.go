package app

import (
	"io"
	"log/slog"
)

// newLogger returns an isolated logger writing records at or above level to
// w, as JSON when format is "json" and as text otherwise.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
