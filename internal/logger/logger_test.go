package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equalf(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Out = &buf
	cfg.Level = zerolog.WarnLevel

	log := New(cfg)
	log.Info().Msg("hidden")
	log.Warn().Str("city", "A").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "city=A")
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farepath.log")
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.FilePath = path

	log := New(cfg)
	log.Info().Str("route", "A -> C").Msg("planned")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"route":"A -> C"`)
	assert.Contains(t, string(data), `"message":"planned"`)
}

func TestNew_NoSinkIsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false

	log := New(cfg)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
