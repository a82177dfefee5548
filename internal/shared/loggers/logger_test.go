package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str(FieldLogFile, "20180308").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "20180308", entry[FieldLogFile])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestCtx_ReturnsContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldRunID, "run-1").Logger().WithContext(context.Background())
	Ctx(ctx).Debug().Msg("hello")

	assert.Contains(t, buf.String(), `"run_id":"run-1"`)
}
