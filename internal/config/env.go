package config

import (
	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the SEQINT_ prefix.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: SEQINT_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: SEQINT_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// DefaultStep is the half step for dimensions that do not set one.
	// Env: SEQINT_DEFAULT_STEP (default: 0.01)
	DefaultStep float64 `envconfig:"DEFAULT_STEP" default:"0.01"`

	// Output is the report format (text, json or yaml).
	// Env: SEQINT_OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`
}

// LoadFromEnv loads configuration from SEQINT_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(DefaultEnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, errors.Wrap(err, "process env")
	}
	return cfg, nil
}

// ToConfig validates the raw values and converts them to a Config.
func (e EnvConfig) ToConfig() (Config, error) {
	cfg := NewConfig().WithLogLevel(e.LogLevel)

	cfg, err := cfg.WithLogFormat(e.LogFormat)
	if err != nil {
		return Config{}, err
	}
	if cfg, err = cfg.WithDefaultStep(e.DefaultStep); err != nil {
		return Config{}, err
	}
	if cfg, err = cfg.WithOutput(e.Output); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
