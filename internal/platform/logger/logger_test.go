package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nonsense"))
	assert.Equal(t, "error", Error.String())

	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "medtrack", Output: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"component": "drugs", "": "dropped"}).
		Warn("remote lookup failed", map[string]any{"query": "asprin"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "remote lookup failed", entry["message"])
	assert.Equal(t, "medtrack", entry["app"])
	assert.Equal(t, "drugs", entry["component"])
	assert.Equal(t, "asprin", entry["query"])
	assert.NotContains(t, entry, "")
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatText, Output: &buf})
	l.Info("alerts computed", map[string]any{"count": 2})

	out := buf.String()
	assert.Contains(t, out, "alerts computed")
	assert.Contains(t, out, "count=2")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"a": 1}).Error("nothing", nil)
}
