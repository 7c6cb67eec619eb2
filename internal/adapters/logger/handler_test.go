package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/seer/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		msg   string
		want  string
	}{
		{name: "info", level: slog.LevelInfo, msg: "info message", want: "info message\n"},
		{name: "warn", level: slog.LevelWarn, msg: "warn message", want: "! warn message\n"},
		{name: "error", level: slog.LevelError, msg: "error message", want: "✗ error message\n"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "debug message", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newTestHandler(t)
			slog.New(handler).Log(context.Background(), tt.level, tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	handler, buf := newTestHandler(t)

	lg := slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("project", "/repo/a.proj.yaml"),
		slog.Group("predictor", slog.String("name", "ArtifactsSdk")),
	}))
	lg.WithGroup("stats").Info("predicted", "inputs", 3, slog.Group("outputs", slog.Int("files", 2)))

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_EmptyGroup(t *testing.T) {
	handler, _ := newTestHandler(t)
	assert.Same(t, handler, handler.WithGroup(""))
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler, _ := newTestHandler(t)
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}
