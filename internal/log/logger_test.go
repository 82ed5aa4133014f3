package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqint/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"DEBUG":   zerolog.DebugLevel,
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"INFO":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogFormatJSON, "INFO")

	logger.Debug().Msg("hidden")
	logger.Info().Str("name", "cube").Float64("value", 8).Msg("integral done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug is below the configured level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cube", entry["name"])
	assert.Equal(t, 8.0, entry["value"])
	assert.Equal(t, "integral done", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := FromConfig(&buf, config.NewConfig().WithLogLevel("warn"))

	logger.Info().Msg("hidden")
	logger.Warn().Str("name", "sphere").Msg("tolerance missed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "tolerance missed")
	assert.Contains(t, out, "name=sphere")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "pretty output is not JSON")
}
