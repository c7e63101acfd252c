//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	rotating := func(mutate func(s *LoggerSettings)) *LoggerSettings {
		s := &LoggerSettings{
			LogLevel:   LogLevelDebug,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/article-service/app.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		if mutate != nil {
			mutate(s)
		}
		return s
	}

	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"valid console logger", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, false},
		{"valid file logger", rotating(nil), false},
		{"missing log level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown log type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"file logger without path", rotating(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file logger max size too large", rotating(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file logger without backups", rotating(func(s *LoggerSettings) { s.MaxBackups = 0 }), true},
		{"file logger max age too large", rotating(func(s *LoggerSettings) { s.MaxAge = 366 }), true},
		{"console logger ignores rotation", &LoggerSettings{LogLevel: LogLevelError, LogType: LogTypeConsole, MaxSize: 1000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_ApplyFileDefaults(t *testing.T) {
	file := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxBackups: 5}
	file.ApplyFileDefaults()

	assert.Equal(t, DefaultLogFilePath, file.FilePath)
	assert.Equal(t, DefaultLogMaxSize, file.MaxSize)
	assert.Equal(t, 5, file.MaxBackups)
	assert.Equal(t, DefaultLogMaxAge, file.MaxAge)
	assert.NoError(t, file.Validate())

	console := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}
	console.ApplyFileDefaults()
	assert.Empty(t, console.FilePath)
	assert.Zero(t, console.MaxSize)
}
