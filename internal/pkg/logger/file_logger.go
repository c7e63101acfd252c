package logger

import (
	"log/slog"

	"github.com/MGTheTrain/article-service/internal/pkg/config"
	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON records to a size rotated log file.
type FileLogger struct {
	slogLogger
	writer *lumberjack.Logger
}

// NewFileLogger creates a file logger honoring the rotation fields of settings.
func NewFileLogger(settings *config.LoggerSettings) *FileLogger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	return &FileLogger{
		slogLogger: slogLogger{logger: slog.New(handler)},
		writer:     writer,
	}
}

// Close releases the underlying log file.
func (l *FileLogger) Close() error {
	return l.writer.Close()
}
