package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestSiteLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("server").With("addr", "localhost:8080").
		Error(context.Background(), errors.New("boom"), "listen failed", "attempt", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "listen failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "server", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "localhost:8080", entry["addr"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestSiteLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, nil, "shown warn")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
}

func TestSiteLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})
	_ = parent.With("request_id", "abc")

	parent.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestFromSettings(t *testing.T) {
	var buf bytes.Buffer
	logger, err := FromSettings("debug", "json", &buf)
	require.NoError(t, err)
	logger.Debug(context.Background(), "hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	_, err = FromSettings("loud", "text", &buf)
	assert.Error(t, err)

	_, err = FromSettings("info", "xml", &buf)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error(context.Background(), errors.New("x"), "dropped")
	})
}

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "password field",
			input:    "user password: secret123",
			expected: "[REDACTED]",
		},
		{
			name:     "token in query",
			input:    "/static/app.css?token=abc123",
			expected: "[REDACTED]",
		},
		{
			name:     "normal path",
			input:    "/contact",
			expected: "/contact",
		},
		{
			name:     "long text truncation",
			input:    string(make([]byte, 1500)),
			expected: string(make([]byte, 1000)) + "...[TRUNCATED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeForLog(tt.input))
		})
	}
}
