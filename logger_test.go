package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := NewLogger(out, "info", "json")
		logger.Info("hello", "key", "value")

		var record map[string]interface{}
		assert.NoError(t, sonic.Unmarshal(out.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "value", record["key"])
	})

	t.Run("text format", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := NewLogger(out, "info", "text")
		logger.Info("hello")

		assert.Contains(t, out.String(), "msg=hello")
	})

	t.Run("unknown format falls back to text", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := NewLogger(out, "info", "weird")
		logger.Info("hello")

		assert.Contains(t, out.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		out := &bytes.Buffer{}
		logger := NewLogger(out, "warn", "text")

		logger.Info("dropped")
		assert.Empty(t, out.String())

		logger.Warn("kept")
		assert.Contains(t, out.String(), "msg=kept")
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}
