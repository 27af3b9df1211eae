package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TIMEFIELD_LOG_LEVEL"

// LogFileEnvVar names the file log output is written to. The picker owns the
// terminal, so logs default to a file rather than stdout.
const LogFileEnvVar = "TIMEFIELD_LOG_FILE"

// DefaultLogFile is used when logging is enabled but no path is given.
const DefaultLogFile = "timefield.log"

// Initialize creates a new logger with the specified level, writing to path.
// Empty arguments fall back to TIMEFIELD_LOG_LEVEL and TIMEFIELD_LOG_FILE.
// If no level is set anywhere, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = DefaultLogFile
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeFromEnv initializes the logger from TIMEFIELD_LOG_LEVEL and
// TIMEFIELD_LOG_FILE.
func InitializeFromEnv() error {
	return Initialize("", "")
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogInputRejected records a candidate value that failed validation and was
// rolled back to the previous valid value.
func LogInputRejected(field, candidate, restored string, err error) {
	Debug("Input rejected",
		zap.String("field", field),
		zap.String("candidate", candidate),
		zap.String("restored", restored),
		zap.Error(err),
	)
}

// LogValueCommitted records a value that passed validation.
func LogValueCommitted(field string, value int, rendered string) {
	Debug("Value committed",
		zap.String("field", field),
		zap.Int("value", value),
		zap.String("rendered", rendered),
	)
}

// LogFocusMove records focus moving between fields.
func LogFocusMove(from, to string, caret int) {
	Debug("Focus moved",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("caret", caret),
	)
}

// LogWrap records an increment or decrement that wrapped around a bound.
func LogWrap(field string, from, to int) {
	Debug("Value wrapped",
		zap.String("field", field),
		zap.Int("from", from),
		zap.Int("to", to),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
