package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("JSON Outside Local", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger("production", "warn", &buf)

		logger.Info("hidden")
		logger.Warn("shown", slog.String("order_id", "o-1"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "o-1", entry["order_id"])
	})

	t.Run("Text In Local", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger("local", "debug", &buf).Debug("cart loaded")

		assert.Contains(t, buf.String(), "msg=\"cart loaded\"")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
