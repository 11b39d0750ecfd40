package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestRequestID(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestInit_FileOutput(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		globalLogger = nil
		slog.SetDefault(prev)
	})

	path := filepath.Join(t.TempDir(), "logs", "pricing.log")
	require.NoError(t, Init(Config{Level: "info", Format: "json", Output: "file", FilePath: path, MaxSize: 1}))

	ctx := ContextWithRequestID(context.Background(), "req-42")
	Info(ctx, "option priced", "price", 10.45)
	Debug(ctx, "suppressed below info")
	LogDuration(ctx, "batch finished", "contracts", 3)()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"option priced"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"price":10.45`)
	assert.NotContains(t, out, "suppressed below info")
	assert.Contains(t, out, `"msg":"batch finished"`)
	assert.Contains(t, out, `"duration":`)
}

func TestGet_FallsBackToDefault(t *testing.T) {
	globalLogger = nil
	assert.Equal(t, slog.Default(), Get())
}
