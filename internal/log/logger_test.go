package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponentWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(Config{Level: "debug", Output: &buf}))
	t.Cleanup(func() { Close() })

	logger := WithComponent("catalog")
	logger.Debug().Str("theme", "purple").Msg("resolved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "goalboard", entry["service"])
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, "purple", entry["theme"])
	assert.Equal(t, "debug", entry["level"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(Config{Level: "warn", Output: &buf}))
	t.Cleanup(func() { Close() })

	logger := Base()
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestInvalidLevel(t *testing.T) {
	err := Configure(Config{Level: "loud"})
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, Configure(Config{Path: path}))

	logger := WithComponent("app")
	logger.Info().Msg("started")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"started"`)
}
