package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(buf *bytes.Buffer) *Config {
	return &Config{
		Level:  DebugLevel,
		Output: buf,
	}
}

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(testConfig(&bytes.Buffer{}))
		ctx := ContextWithLogger(context.Background(), expected)

		actual := FromContext(ctx)

		require.NotNil(t, actual)
		assert.Equal(t, expected, actual)
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(context.Background())

		require.NotNil(t, l)
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerCtxKey, "not a logger")

		l := FromContext(ctx)

		require.NotNil(t, l)
	})
}

func TestLogger_Output(t *testing.T) {
	t.Run("Should write structured keyvals to the configured output", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(testConfig(&buf))

		l.Info("table loaded", "entries", 42)

		out := buf.String()
		assert.Contains(t, out, "table loaded")
		assert.Contains(t, out, "entries=42")
	})

	t.Run("Should suppress messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: ErrorLevel, Output: &buf})

		l.Debug("hidden")
		l.Error("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("Should carry With fields on every message", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(testConfig(&buf)).With("component", "polyfill")

		l.Warn("duplicate symbol")

		assert.Contains(t, buf.String(), "component=polyfill")
	})

	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})

		l.Info("hello")

		assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
	})
}

func TestGetDefault(t *testing.T) {
	t.Run("Should lazily create a default logger", func(t *testing.T) {
		require.NotNil(t, GetDefault())
	})
}
