package helper

import (
	"errors"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration holds the settings read from the environment
type Configuration struct {
	LogLevel         string `env:"WORDARRAY_LOG_LEVEL" envDefault:"info"`
	DataFile         string `env:"WORDARRAY_DATA_FILE" envDefault:"data/words.txt"`
	MetricsNamespace string `env:"WORDARRAY_METRICS_NAMESPACE" envDefault:"wordarray"`
}

// NewConfiguration loads an optional .env file and parses the environment.
// A missing .env file is not an error.
func NewConfiguration() (*Configuration, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, NewError("load .env", err)
	}

	config := &Configuration{}
	err = env.Parse(config)
	if err != nil {
		return nil, NewError("parse environment", err)
	}

	_, err = config.Level()
	if err != nil {
		return nil, NewError("parse log level", err)
	}

	return config, nil
}

// Level returns the configured log level
func (c *Configuration) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// SetTestConfigEnvs sets the configuration environment variables for the duration of a test
func SetTestConfigEnvs(t *testing.T, logLevel string, dataFile string) {
	t.Setenv("WORDARRAY_LOG_LEVEL", logLevel)
	t.Setenv("WORDARRAY_DATA_FILE", dataFile)
	t.Setenv("WORDARRAY_METRICS_NAMESPACE", "wordarray_test")
}
