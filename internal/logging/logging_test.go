package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"unitconvert/internal/config"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, config.Log{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = New(&buf, config.Log{Level: "warn", Format: "console"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, config.Log{Level: "nonsense"})
	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), `invalid log level "nonsense"`)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "WARN"} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, config.Log{Level: "info", Format: "json"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("resolved converter", zap.String("category", "distance"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved converter", entry["msg"])
	assert.Equal(t, "distance", entry["category"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, config.Log{Level: "warn"})
	require.NoError(t, err)

	logger.Warn("unknown unit", zap.String("unit", "fute"))

	assert.Contains(t, buf.String(), "unknown unit")
	assert.Contains(t, buf.String(), "fute")
}
