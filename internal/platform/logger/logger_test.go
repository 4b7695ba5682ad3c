// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/goalboard/internal/config"
	"github.com/phrazzld/goalboard/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := logger.ParseLevel(tt.name)
		assert.Equal(t, tt.want, got, "level for %q", tt.name)
		assert.Equal(t, tt.known, ok, "known for %q", tt.name)
	}
}

func TestSetupJSON(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	l, err := logger.Setup(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "info should be filtered at warn level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "value", entry["key"])

	assert.Same(t, l, slog.Default(), "Setup should install the logger as default")
}

func TestSetupText(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	l, err := logger.Setup(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)

	l.Debug("debug line", "n", 1)
	assert.Contains(t, buf.String(), "msg=\"debug line\"")
	assert.Contains(t, buf.String(), "n=1")
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	l, err := logger.Setup(config.LogConfig{Level: "loud", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "invalid log level configured")

	buf.Reset()
	l.Debug("filtered")
	l.Info("kept")
	assert.NotContains(t, buf.String(), "filtered")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetupInvalidFormat(t *testing.T) {
	l, err := logger.Setup(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestTestLogBuffer(t *testing.T) {
	buf, l := logger.SetupTestLogger(t)

	l.Info("first", "a", 1)
	l.Debug("second")
	l.Info("first", "a", 2)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	found, err := buf.FindEntries("first")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, float64(2), found[1]["a"])

	buf.Reset()
	assert.Empty(t, buf.String())
}
