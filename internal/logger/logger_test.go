package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := DefaultConfig()
	config.Level = "warn"
	config.Format = "json"
	InitLoggerWithWriter(config, &buf)

	Debug("should be dropped")
	Info("should be dropped")
	Warn("should appear")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), "should appear")
}

func TestSessionIDContext(t *testing.T) {
	ctx := context.Background()

	_, ok := SessionIDFromContext(ctx)
	assert.False(t, ok)

	id := GenerateSessionID()
	ctx = WithSessionID(ctx, id)

	got, ok := SessionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContextIncludesSessionID(t *testing.T) {
	var buf bytes.Buffer

	config := DefaultConfig()
	config.Format = "json"
	InitLoggerWithWriter(config, &buf)

	ctx := WithSessionID(context.Background(), "abc-123")
	FromContext(ctx).Info("tick")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "abc-123", logEntry["session_id"])
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := Config{Level: tt.level}
			assert.Equal(t, tt.expected, c.LogLevel().String())
		})
	}
}
