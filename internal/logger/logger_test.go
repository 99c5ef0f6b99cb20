package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, "level=%q", s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextHelpers checks that loggers travel through the context with names and fields.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := New(zapcore.DebugLevel, zapcore.AddSync(&buf))

	ctx := ToContext(context.Background(), l)
	ctx = WithName(ctx, "widget")
	ctx = WithKV(ctx, "mode", "countdown")

	InfoKV(ctx, "Countdown finished", "seconds", 0)

	out := buf.String()
	require.Contains(t, out, "widget")
	require.Contains(t, out, "Countdown finished")
	require.Contains(t, out, `"mode": "countdown"`)
}

// TestFromContextFallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContextFallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestOpenFile verifies that the file sink is created and written.
func TestOpenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "stopwatch.log")

	l, closeFn, err := OpenFile(path)
	require.NoError(t, err)

	l.Warnw("Another instance is running", "pids", []int{42})
	require.NoError(t, closeFn())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Another instance is running")

	discard, closeFn, err := OpenFile("")
	require.NoError(t, err)
	require.NotNil(t, discard)
	require.NoError(t, closeFn())
}
