// internal/utils/logging.go
package utils

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFileMode = 0644
)

// Logger is the process-wide logger. It is a no-op until Init is called so
// packages can log unconditionally.
var Logger = zap.NewNop()

// Options controls where log entries go and at which level.
type Options struct {
	// Verbose forces debug level regardless of LOG_LEVEL.
	Verbose bool
	// File, when non-empty, receives JSON encoded entries in addition to the console.
	File string
	// Console is the human readable sink. Defaults to stderr; stdout carries command output.
	Console io.Writer
}

// Init configures zap to write to the console and, optionally, a log file.
// This should be called once at application startup.
func Init(opts Options) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := levelFromEnv(os.Getenv("LOG_LEVEL"))
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(console), level),
	}

	if opts.File != "" {
		logFile, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, LogFileMode)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", opts.File, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Logger.Debug("logging initialized", zap.String("log_level", level.String()))

	return nil
}

// levelFromEnv parses LOG_LEVEL. A CLI stays quiet by default, so an empty or
// unknown value means warn.
func levelFromEnv(envLevel string) zapcore.Level {
	if envLevel == "" {
		return zapcore.WarnLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(envLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "unknown LOG_LEVEL '%s', defaulting to 'warn'\n", envLevel)
		return zapcore.WarnLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field so callers
// don't have to repeat the same field across messages in a component.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger.With(zap.String("component", component))
}
