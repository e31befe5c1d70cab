package utils

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithComponent(t *testing.T) {
	// Setup observer to capture logs
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	originalLogger := Logger
	Logger = zap.New(observedZapCore)
	defer func() { Logger = originalLogger }()

	componentLogger := WithComponent("settings")
	assert.NotNil(t, componentLogger)

	componentLogger.Info("settings persisted")

	logs := observedLogs.All()
	require.Equal(t, 1, len(logs))
	assert.Equal(t, "settings persisted", logs[0].Message)
	assert.Equal(t, "settings", logs[0].ContextMap()["component"])
}

func TestWithComponent_NilLogger(t *testing.T) {
	originalLogger := Logger
	Logger = nil
	defer func() { Logger = originalLogger }()

	componentLogger := WithComponent("settings")
	assert.NotNil(t, componentLogger)
	assert.NotPanics(t, func() { componentLogger.Info("dropped") })
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.WarnLevel},
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromEnv(tt.in))
		})
	}
}

func TestInit(t *testing.T) {
	originalLogger := Logger
	defer func() { Logger = originalLogger }()

	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "nexus-cli.log")

	err := Init(Options{Verbose: true, File: logFile, Console: &console})
	require.NoError(t, err)

	Logger.Debug("hello")
	_ = Sync()

	assert.Contains(t, console.String(), "hello")
	assert.FileExists(t, logFile)
}

func TestInit_BadFile(t *testing.T) {
	originalLogger := Logger
	defer func() { Logger = originalLogger }()

	err := Init(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
