package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "error", Verbose: true, Output: &buf})
	require.NoError(t, err)

	log.Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNew_JSONWithCommand(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	ctx := WithCommand(context.Background(), "drill")
	log.InfoContext(ctx, "drilled", "lang", "fr")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "drilled", rec["msg"])
	assert.Equal(t, "drill", rec["command"])
	assert.Equal(t, "fr", rec["lang"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelWarn,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewNope(t *testing.T) {
	log := NewNope()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("discarded") })
}
