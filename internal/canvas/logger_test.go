package canvas

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLoggerReceivesDroppedDraws(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	rt, err := NewRenderTarget(newRecorder(), 4, 4)
	require.NoError(t, err)
	rt.Clear()

	assert.Contains(t, logs.String(), "draw on unbound render target")
	assert.Contains(t, logs.String(), "op=clear")
}

func TestSetLoggerNilSilences(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
