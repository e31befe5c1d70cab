package client

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// LoggerLevels are the root logger levels the server accepts.
var LoggerLevels = []string{"INFO", "DEBUG", "ERROR"}

// ErrInvalidLoggerLevel is returned before any I/O for an unsupported level.
var ErrInvalidLoggerLevel = fmt.Errorf("logging level must be one of %s", strings.Join(LoggerLevels, ", "))

// LoggingService reads and sets the server's log4j configuration.
type LoggingService struct {
	resources *Resources
}

// NewLoggingService creates a LoggingService over resources.
func NewLoggingService(resources *Resources) *LoggingService {
	return &LoggingService{resources: resources}
}

// Get returns the current logger configuration.
func (s *LoggingService) Get(ctx context.Context) (*LoggerConfig, error) {
	resp, err := s.resources.Get(ctx, ResourceLogger, "")
	if err != nil {
		return nil, fmt.Errorf("get logging info: %w", err)
	}
	var envelope dataEnvelope[LoggerConfig]
	if err := decode(resp, &envelope); err != nil {
		return nil, fmt.Errorf("get logging info: %w", err)
	}
	return &envelope.Data, nil
}

// SetLevel replaces the logger configuration with level and the stock
// appenders.
func (s *LoggingService) SetLevel(ctx context.Context, level string) error {
	level = strings.ToUpper(strings.TrimSpace(level))
	if !slices.Contains(LoggerLevels, level) {
		return ErrInvalidLoggerLevel
	}
	cfg := LoggerConfig{
		RootLoggerLevel:      level,
		RootLoggerAppenders:  "console,file",
		FileAppenderPattern:  "%4d{yyyy-MM-dd HH:mm:ss} %-5p [%-15.15t] - %c - %m%n",
		FileAppenderLocation: "${nexus-work}/logs/nexus.log",
	}
	if _, err := s.resources.Update(ctx, ResourceLogger, "", dataEnvelope[LoggerConfig]{Data: cfg}); err != nil {
		return fmt.Errorf("set logger level '%s': %w", level, err)
	}
	return nil
}
