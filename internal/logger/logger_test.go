package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Pretty: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"pipeline": "quantity", "inputs": 3})
	log.Info("starting evaluation")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "starting evaluation", entry["message"])
	require.Equal(t, "quantity", entry["pipeline"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Pretty: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Pretty: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"pipeline": "username"})
	log.Error(errors.New("boom"), "evaluation failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "evaluation failed", entry["message"])
	require.Equal(t, "username", entry["pipeline"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	log.Info("no panic")
	log.Debug("no panic")
	log.Warn("no panic")
	log.Error(errors.New("x"), "no panic")
}
