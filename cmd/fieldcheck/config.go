package main

// appConfig is read from FIELDCHECK_* environment variables.
type appConfig struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

const envPrefix = "FIELDCHECK_"
