// Package logger installs the process-wide slog default: text output to
// stdout, debug level behind the DEBUG env toggle.
package logger

import (
	"log/slog"
	"os"
)

// Init configures the default logger. Call once at startup, before any
// package logs.
func Init() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
