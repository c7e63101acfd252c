package config

// Levels accepted by log_level and LOG_LEVEL. critical is written at error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Sinks accepted by log_type and LOG_TYPE
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// File sink defaults, filled in when the config leaves them unset
const (
	DefaultLogFilePath   = "logs/article-service.log"
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)
