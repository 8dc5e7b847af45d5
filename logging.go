package main

import (
	"io"
	"log/slog"

	console "github.com/phsym/console-slog"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger. "console" gives colourised human
// output for interactive use; anything else logs JSON.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "console":
		handler = console.NewHandler(w, &console.HandlerOptions{
			Level: parseLogLevel(level),
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLogLevel(level),
		})
	}
	return slog.New(handler)
}
