package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNew_Defaults(t *testing.T) {
	l, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestInit_ReplacesGlobal(t *testing.T) {
	require.NoError(t, Init(Config{Level: "warn", Encoding: "console"}))
	assert.False(t, Get().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, Init(DefaultConfig()))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mu.Lock()
	prev := globalLogger
	globalLogger = zap.New(core)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = prev
		mu.Unlock()
	})

	ctx := context.WithValue(context.Background(), PoolKey, "buffers")
	ctx = context.WithValue(ctx, RunIDKey, "run-1")

	WithContext(ctx).Info("with fields")
	WithContext(context.Background()).Info("bare")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]interface{}{"pool": "buffers", "run_id": "run-1"}, entries[0].ContextMap())
	assert.Empty(t, entries[1].ContextMap())
}

func TestContextFields(t *testing.T) {
	assert.Empty(t, ContextFields(context.Background()))

	ctx := context.WithValue(context.Background(), RunIDKey, "run-2")
	fields := ContextFields(ctx)
	require.Len(t, fields, 1)
	assert.Equal(t, "run_id", fields[0].Key)
	assert.Equal(t, "run-2", fields[0].String)

	ctx = context.WithValue(ctx, PoolKey, 7)
	assert.Len(t, ContextFields(ctx), 1, "non-string values are ignored")
}

func TestSync(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	mu.Lock()
	prev := globalLogger
	globalLogger = zap.New(core)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		globalLogger = prev
		mu.Unlock()
	})

	assert.NoError(t, Sync())
}
