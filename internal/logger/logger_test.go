package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewFromZap(zap.New(core)), logs
}

func TestErrorAddsErrorField(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	log.Error("insert failed", errors.New("boom"), "phone", int64(9876543210))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "insert failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, int64(9876543210), fields["phone"])
}

func TestErrorWithNilError(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	log.Error("no cause", nil)

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["error"]
	assert.False(t, ok)
}

func TestWithCarriesFields(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.With("component", "repository").Info("ready")
	log.Debug("filtered out")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "repository", logs.All()[0].ContextMap()["component"])
}

func TestNewFallsBackOnUnknownLevel(t *testing.T) {
	log, err := New("development", "loud")
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Sync()

	log, err = New("production", "warn")
	require.NoError(t, err)
	require.NotNil(t, log)
}
