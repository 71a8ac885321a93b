package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithWriter_Formats(t *testing.T) {
	var text bytes.Buffer
	NewLoggerWithWriter(slog.LevelInfo, "text", &text).Info("run finished", "algorithm", "srtf")
	assert.Contains(t, text.String(), "msg=\"run finished\"")
	assert.Contains(t, text.String(), "algorithm=srtf")

	var js bytes.Buffer
	NewLoggerWithWriter(slog.LevelInfo, "JSON", &js).Info("run finished", "algorithm", "srtf")
	assert.Contains(t, js.String(), `"msg":"run finished"`)
	assert.Contains(t, js.String(), `"algorithm":"srtf"`)
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Debug("dispatch", "pid", 1)
	logger.Warn("slow request")

	assert.NotContains(t, buf.String(), "dispatch")
	assert.Contains(t, buf.String(), "slow request")
}

func TestNewLoggerWithWriter_ChildLogger(t *testing.T) {
	var buf bytes.Buffer
	child := NewLoggerWithWriter(slog.LevelDebug, "text", &buf).With("component", "api")

	child.Debug("request", "path", "/api/v1/rr", ErrAttr(errors.New("boom")))

	assert.Contains(t, buf.String(), "component=api")
	assert.Contains(t, buf.String(), "path=/api/v1/rr")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}
