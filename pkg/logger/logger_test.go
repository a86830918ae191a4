package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesJSONToOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Encoding: "json", Name: "tasklist", Output: &buf})
	require.NoError(t, err)

	log.Debug("hello", zap.Int("count", 2))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "tasklist", entry["logger"])
	require.Contains(t, entry, "timestamp")
	require.EqualValues(t, 2, entry["count"])
}

func TestNewFallsBackToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "verbose", Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	require.Zero(t, buf.Len())
	log.Info("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	require.Equal(t, "req-1", RequestID(ctx))

	WithRequestID(ctx, base).Info("tagged")
	WithRequestID(context.Background(), base).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	require.NotContains(t, entries[1].ContextMap(), "request_id")
	require.Nil(t, WithRequestID(ctx, nil))
}
