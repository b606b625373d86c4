package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello", logger.FieldType("Currency"))
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "field_type=Currency")
	})

	t.Run("pretty formatter writes plain text to non-terminals", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithPrettyFormatter())
		log.Info("registry sealed", slog.Int("types", 20))
		out := buf.String()
		assert.Contains(t, out, "registry sealed")
		assert.Contains(t, out, "types=20")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Zero(t, buf.Len())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("level name option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
		log.Debug("visible")
		assert.Equal(t, "DEBUG", decode(t, buf)["level"])
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				id, ok := ctx.Value(key{}).(string)
				return logger.RunID(id), ok
			}),
		)
		ctx := context.WithValue(context.Background(), key{}, "run-42")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "run-42", decode(t, buf)["run_id"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production logs json at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("production", "fieldcheck"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())
		log.Info("visible")
		entry := decode(t, buf)
		assert.Equal(t, "fieldcheck", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("unknown environment falls back to development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "fieldcheck"), logger.WithOutput(buf))
		log.Debug("visible")
		out := buf.String()
		assert.Contains(t, out, "visible")
		assert.Contains(t, out, "env=development")
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "pretty", " JSON "} {
		f, err := logger.ParseFormat(name)
		require.NoError(t, err, name)
		assert.NotPanics(t, func() { logger.New(logger.WithFormat(f), logger.WithOutput(&bytes.Buffer{})) })
	}

	_, err := logger.ParseFormat("xml")
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
