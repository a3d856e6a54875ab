package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/ebnf/internal/config"
)

func TestParseLevel(t *testing.T) {
	samples := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for name, expected := range samples {
		level, e := ParseLevel(name)
		require.NoError(t, e, name)
		assert.Equal(t, expected, level, name)
	}

	_, e := ParseLevel("loud")
	assert.Error(t, e)
}

func TestTextLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log, e := New(config.LogConfig{Level: "info", Format: "text"}, buf)
	require.NoError(t, e)

	log.Debug("hidden")
	log.Info("parsed", "file", "a.ebnf", "rules", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=parsed file=a.ebnf rules=3")
}

func TestJSONLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log, e := New(config.LogConfig{Level: "debug", Format: "json"}, buf)
	require.NoError(t, e)

	log.Debug("parse", "production", "syntax")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "syntax", entry["production"])
}

func TestBadConfig(t *testing.T) {
	_, e := New(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, e)
	_, e = New(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, e)
}
