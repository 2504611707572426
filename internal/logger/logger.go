package logger

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	Logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	slog.SetDefault(Logger)
}

// New returns a logger tagged with the component name.
func New(component string) *slog.Logger {
	if Logger == nil {
		Init(false)
	}
	return Logger.With(slog.String("component", component))
}
