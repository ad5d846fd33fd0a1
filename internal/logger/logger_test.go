package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T, production bool, level string) *bytes.Buffer {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	Init(&buf, production, level)
	return &buf
}

func TestLogger_ScopeFields(t *testing.T) {
	buf := captureDefault(t, false, "debug")

	New("numerology").File("assembler").Function("Assemble").Info("assembled report", "driver", 1)

	out := buf.String()
	assert.Contains(t, out, "package=numerology")
	assert.Contains(t, out, "file=assembler")
	assert.Contains(t, out, "function=Assemble")
	assert.Contains(t, out, "driver=1")
}

func TestLogger_Err(t *testing.T) {
	buf := captureDefault(t, false, "info")
	cause := errors.New("disk gone")

	err := New("repositories").Function("load").Err("failed to read fortune table", cause, "path", "x.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to read fortune table: disk gone", err.Error())
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "path=x.json")
}

func TestLogger_ErrorReturnsMessage(t *testing.T) {
	captureDefault(t, false, "info")

	err := New("database").Error("database path is empty", "dbPath", "")
	assert.EqualError(t, err, "database path is empty")

	err = New("database").ErrMsg("config is nil")
	assert.EqualError(t, err, "config is nil")
}

func TestLogger_LevelFilter(t *testing.T) {
	buf := captureDefault(t, false, "warn")

	log := New("handlers")
	log.Info("hidden")
	log.Debug("hidden too")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_ProductionUsesJSON(t *testing.T) {
	buf := captureDefault(t, true, "info")

	New("app").With("requestID", "abc").Info("started")

	assert.Contains(t, buf.String(), `"msg":"started"`)
	assert.Contains(t, buf.String(), `"requestID":"abc"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "upper case warn", input: "WARN", want: slog.LevelWarn},
		{name: "warning alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}
