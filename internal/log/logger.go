// Package log provides structured logging for the seqint CLI.
package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/seqint/internal/config"
)

// New creates a logger writing to w. The pretty format renders
// human-readable lines without colour; json writes one object per line.
func New(w io.Writer, format config.LogFormat, level string) zerolog.Logger {
	var out io.Writer = w
	if format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// FromConfig creates a logger from the CLI configuration.
func FromConfig(w io.Writer, cfg config.Config) zerolog.Logger {
	return New(w, cfg.LogFormat(), cfg.LogLevel())
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger { return zerolog.Nop() }

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
