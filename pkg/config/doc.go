// Package config loads process configuration from environment variables and
// optional .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Load
// parses the environment into any struct annotated with `env` tags and caches
// the result per type, so repeated calls during startup are cheap and
// consistent. MustLoad panics instead of returning an error, for settings
// without which the process must not start.
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_")); err != nil {
//	    return err
//	}
//
// Use ResetCache in tests that change the environment between loads.
package config
