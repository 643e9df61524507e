// Package logger builds the zerolog logger used by the farepath command.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// Config holds logger settings.
type Config struct {
	Level      zerolog.Level
	Console    bool      // human-readable output on Out
	Out        io.Writer // console destination; os.Stderr when nil
	FilePath   string    // rotating JSON log file; disabled when empty
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig logs info and above to stderr, without a file.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Console:    true,
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

// New returns a logger writing to the configured sinks. With no sink
// configured it returns a disabled logger.
func New(cfg Config) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		out := cfg.Out
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(out),
		})
	}
	if cfg.FilePath != "" {
		writers = append(writers, FileWriter(cfg))
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	return zerolog.New(io.MultiWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// FileWriter returns a size-rotated file writer for cfg.FilePath.
func FileWriter(cfg Config) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// ParseLevel maps a level name to a zerolog level; unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// isTerminal reports whether w is a terminal; colors are only emitted there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
