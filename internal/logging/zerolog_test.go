package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerolog_JSONFieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, LevelDebug, "json")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Error(ctx, "boom", "err", errors.New("network down"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "network down", lines[1]["err"])
}

func TestZerolog_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, LevelError, "json")

	log.Info(context.Background(), "skipped")
	log.Warn(context.Background(), "skipped")

	assert.Zero(t, buf.Len())
}

func TestZerolog_WithAndOddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, LevelInfo, "json").With("component", "session")

	log.Info(context.Background(), "odd", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "session", lines[0]["component"])
	assert.Equal(t, "dangling", lines[0]["!BADKEY"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := NewNop().With("x", 1)
	l.Info(context.Background(), "ignored")
	l.Error(context.Background(), "ignored")
}

func TestNew_PicksBackendByFormat(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New(&buf, LevelInfo, "text").(*SlogLogger)
	assert.True(t, ok)

	log := New(&buf, LevelInfo, "json")
	_, ok = log.(*ZerologLogger)
	assert.True(t, ok)

	log.Info(context.Background(), "hello")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "hello", lines[0]["message"])
}
