package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
)

type registryConfig struct {
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"json"`
	Strict    bool     `env:"STRICT" envDefault:"true"`
	Types     []string `env:"TYPES" envSeparator:","`
}

type requiredConfig struct {
	Fields string `env:"FIELDS_FILE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses prefixed variables", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("FC_LOG_LEVEL", "debug")
		t.Setenv("FC_STRICT", "false")
		t.Setenv("FC_TYPES", "Text,Currency")

		var cfg registryConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("FC_")))
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.False(t, cfg.Strict)
		assert.Equal(t, []string{"Text", "Currency"}, cfg.Types)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		var first registryConfig
		require.NoError(t, config.Load(&first, config.WithEnvironment(map[string]string{"LOG_LEVEL": "warn"})))

		var second registryConfig
		require.NoError(t, config.Load(&second, config.WithEnvironment(map[string]string{"LOG_LEVEL": "error"})))
		assert.Equal(t, "warn", second.LogLevel)

		config.ResetCache()
		var third registryConfig
		require.NoError(t, config.Load(&third, config.WithEnvironment(map[string]string{"LOG_LEVEL": "error"})))
		assert.Equal(t, "error", third.LogLevel)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[registryConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	var cfg requiredConfig
	assert.Panics(t, func() {
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads file into environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("FIELDKIT_TEST_DOTENV=from_file\n"), 0o600))
		t.Setenv("FIELDKIT_TEST_DOTENV", "")
		require.NoError(t, os.Unsetenv("FIELDKIT_TEST_DOTENV"))

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from_file", os.Getenv("FIELDKIT_TEST_DOTENV"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
