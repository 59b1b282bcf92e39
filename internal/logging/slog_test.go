package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.key+"="+tc.val)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "term_service").Info(context.Background(), "created", "keyword", "HTTP")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=created", "module=term_service", "keyword=HTTP"} {
		assert.Contains(t, out, s)
	}
}

func TestNew_SelectsFormat(t *testing.T) {
	var buf bytes.Buffer

	l, err := New("info", FormatJSON, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "hello", "k", "v")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "json handler output expected, got %q", buf.String())

	buf.Reset()
	l, err = New("warn", FormatText, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "suppressed")
	l.Warn(context.Background(), "kept")
	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "msg=kept")

	l, err = New("debug", FormatZap, &buf)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, err := New("loud", FormatJSON, &bytes.Buffer{})
	require.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	require.Error(t, err)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With("a", 1)
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
}
