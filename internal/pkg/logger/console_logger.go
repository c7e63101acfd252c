package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes human readable key=value lines to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level)
}

func newConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
