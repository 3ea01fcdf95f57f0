package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		wantDebug bool
	}{
		{name: "development", mode: "development", wantDebug: true},
		{name: "production", mode: "production", wantDebug: false},
		{name: "prod alias", mode: "PROD", wantDebug: false},
		{name: "unknown falls back to development", mode: "", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.mode)
			require.NoError(t, err)
			require.NotNil(t, log.SugaredLogger)
			assert.Equal(t, tt.wantDebug, log.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestLogger_WithAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &Logger{SugaredLogger: zap.New(core).Sugar()}

	child := log.With("snapshot", "default")
	child.Debug("view built", "view", "dashboard")
	child.Info("template applied", "movement_id", "mov-1")
	child.Warn("dimension skipped")
	child.Error("save failed", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "view built", entries[0].Message)
	assert.Equal(t, "default", entries[0].ContextMap()["snapshot"])
	assert.Equal(t, "dashboard", entries[0].ContextMap()["view"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	assert.Empty(t, logs.FilterMessage("view built").FilterField(zap.String("snapshot", "other")).All())
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info("ignored", "k", "v")
		log.With("a", 1).Error("ignored")
		log.Sync()
	})
}
