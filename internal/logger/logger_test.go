package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log
	log = New(NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))
	t.Cleanup(func() { log = prev })
	return &buf
}

func TestInit(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	assert.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		emit func()
		want string
	}{
		{"info", func() { Info("room booked", "booking_id", 7) }, "room booked"},
		{"infof", func() { Infof("server starting on port %s", "8080") }, "server starting on port 8080"},
		{"warn", func() { Warn("notification skipped") }, "notification skipped"},
		{"error", func() { Error("enroll failed") }, "enroll failed"},
		{"errorf", func() { Errorf("class %d is full", 3) }, "class 3 is full"},
		{"debug", func() { Debug("lock acquired") }, "lock acquired"},
		{"debugf", func() { Debugf("trainer %d locked", 2) }, "trainer 2 locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, slog.LevelDebug)
			tt.emit()
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := capture(t, slog.LevelInfo)
	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestStructuredAttributes(t *testing.T) {
	buf := capture(t, slog.LevelInfo)
	Info("session booked", "session_id", 11, "trainer_id", 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session booked", entry["msg"])
	assert.Equal(t, float64(11), entry["session_id"])
	assert.Equal(t, float64(2), entry["trainer_id"])
}

func TestWithError(t *testing.T) {
	buf := capture(t, slog.LevelInfo)

	WithError(assert.AnError).Info("promotion failed")

	output := buf.String()
	assert.Contains(t, output, "promotion failed")
	assert.Contains(t, output, `"error"`)
}

func TestWithFields(t *testing.T) {
	buf := capture(t, slog.LevelInfo)

	WithFields(map[string]interface{}{
		"room":     "Studio A",
		"admin_id": 1,
	}).Info("room booked")

	output := buf.String()
	assert.Contains(t, output, "room booked")
	assert.Contains(t, output, "Studio A")
	assert.Contains(t, output, "admin_id")
}
