package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	level   slog.Level
	handled int
	err     error
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordingHandler) Handle(_ context.Context, _ slog.Record) error {
	h.handled++
	return h.err
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandler(t *testing.T) {
	ctx := context.Background()
	record := slog.Record{Level: slog.LevelError, Message: "boom"}

	t.Run("delivers only to handlers enabled for the level", func(t *testing.T) {
		info := &recordingHandler{level: slog.LevelInfo}
		errOnly := &recordingHandler{level: slog.LevelError}
		m := NewMultiHandler(info, errOnly)

		infoRecord := slog.Record{Level: slog.LevelInfo, Message: "fine"}
		require.NoError(t, m.Handle(ctx, infoRecord))
		assert.Equal(t, 1, info.handled)
		assert.Equal(t, 0, errOnly.handled)
	})

	t.Run("a failing sink does not stop the others", func(t *testing.T) {
		failing := &recordingHandler{level: slog.LevelInfo, err: errors.New("sink down")}
		healthy := &recordingHandler{level: slog.LevelInfo}
		m := NewMultiHandler(failing, healthy)

		err := m.Handle(ctx, record)
		assert.Error(t, err)
		assert.Equal(t, 1, failing.handled)
		assert.Equal(t, 1, healthy.handled)
	})

	t.Run("enabled when any handler is enabled", func(t *testing.T) {
		m := NewMultiHandler(&recordingHandler{level: slog.LevelError})
		assert.True(t, m.Enabled(ctx, slog.LevelError))
		assert.False(t, m.Enabled(ctx, slog.LevelInfo))
	})
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, levelFromEnv())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, slog.LevelInfo, levelFromEnv())
}
