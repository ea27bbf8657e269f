package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLogLevel(t *testing.T) {
	defer func() { _ = SetLogLevel("info") }()

	for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "panic", "fatal", "DEBUG", ""} {
		assert.NoError(t, SetLogLevel(lvl), lvl)
	}
	assert.Error(t, SetLogLevel("verbose"))

	require.NoError(t, SetLogLevel("warn"))
	assert.False(t, Enabled(zapcore.InfoLevel))
	assert.True(t, Enabled(zapcore.ErrorLevel))
}

func TestNewWithWriter(t *testing.T) {
	defer SetLocation(time.UTC)
	loc := time.FixedZone("WIB", 7*3600)
	SetLocation(loc)

	var buf bytes.Buffer
	logger := NewWithWriter("test", &buf)
	logger.Infow("hello", "answer", 42)
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["logger"])
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, float64(42), entry["answer"])

	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestContext(t *testing.T) {
	assert.Equal(t, DefaultLogger(), From(context.Background()))

	var buf bytes.Buffer
	logger := NewWithWriter("ctx", &buf)
	ctx := With(context.Background(), logger)
	assert.Equal(t, logger, From(ctx))
}

func TestNewWithLocation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithLocation("loc", &buf, time.FixedZone("EST", -5*3600))
	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, -5*3600, offset)
}
