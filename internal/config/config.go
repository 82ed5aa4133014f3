// Package config provides CLI configuration.
package config

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Default configuration values.
const (
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = LogFormatPretty
	DefaultStep        = 0.01
	DefaultOutput      = OutputText
	DefaultEnvPrefix   = "SEQINT"
	DefaultEnvFileName = ".env"
)

// ErrInvalidConfig is returned when a configured value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OutputFormat selects how integration reports are printed.
type OutputFormat string

// OutputFormat values.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config is the validated CLI configuration.
type Config struct {
	logLevel    string
	logFormat   LogFormat
	defaultStep float64
	output      OutputFormat
}

// NewConfig returns a Config holding the defaults.
func NewConfig() Config {
	return Config{
		logLevel:    DefaultLogLevel,
		logFormat:   DefaultLogFormat,
		defaultStep: DefaultStep,
		output:      DefaultOutput,
	}
}

// LogLevel returns the log verbosity (DEBUG, INFO, WARN, ERROR).
func (c Config) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c Config) LogFormat() LogFormat { return c.logFormat }

// DefaultStep returns the half step used when a dimension does not set one.
func (c Config) DefaultStep() float64 { return c.defaultStep }

// Output returns the report format.
func (c Config) Output() OutputFormat { return c.output }

// WithLogLevel returns a copy with the given level.
func (c Config) WithLogLevel(level string) Config {
	c.logLevel = strings.ToUpper(level)
	return c
}

// WithLogFormat returns a copy with the given log format.
func (c Config) WithLogFormat(format string) (Config, error) {
	f, err := ParseLogFormat(format)
	if err != nil {
		return c, err
	}
	c.logFormat = f
	return c, nil
}

// WithDefaultStep returns a copy with the given default half step.
func (c Config) WithDefaultStep(step float64) (Config, error) {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return c, errors.Wrapf(ErrInvalidConfig, "default step %v must be finite and > 0", step)
	}
	c.defaultStep = step
	return c, nil
}

// WithOutput returns a copy with the given report format.
func (c Config) WithOutput(output string) (Config, error) {
	o, err := ParseOutputFormat(output)
	if err != nil {
		return c, err
	}
	c.output = o
	return c, nil
}

// ParseLogFormat accepts "pretty" or "json" in any case.
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(s))) {
	case LogFormatPretty:
		return LogFormatPretty, nil
	case LogFormatJSON:
		return LogFormatJSON, nil
	}
	return "", errors.Wrapf(ErrInvalidConfig, "log format %q (want pretty or json)", s)
}

// ParseOutputFormat accepts "text", "json" or "yaml" in any case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML:
		return OutputYAML, nil
	}
	return "", errors.Wrapf(ErrInvalidConfig, "output %q (want text, json or yaml)", s)
}
