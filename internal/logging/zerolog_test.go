package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestZerologLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(context.Background(), "session saved", "user_id", "5", "count", 2)

	m := logLine(t, &buf)
	require.Equal(t, "session saved", m["message"])
	require.Equal(t, "info", m["level"])
	require.Equal(t, "5", m["user_id"])
	require.Equal(t, 2.0, m["count"])
}

func TestZerologLoggerDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Warn(context.Background(), "odd args", "dangling")

	m := logLine(t, &buf)
	require.Equal(t, "dangling", m["!BADKEY"])
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	child := log.With("component", "session")
	child.Error(context.Background(), "save failed", "err", "disk full")

	m := logLine(t, &buf)
	require.Equal(t, "session", m["component"])
	require.Equal(t, "disk full", m["err"])
	require.Equal(t, "error", m["level"])
}
