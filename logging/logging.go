// Package logging builds the process slog.Logger from config.LogConfig.
// File output goes through a size-rotated lumberjack writer.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/pathstep/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger for c and the closer for its output. Stderr is used
// when c.File is empty; closing it is a no-op.
func New(c config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSizeMB, // megabytes
			MaxAge:     c.MaxAgeDays,
			MaxBackups: c.MaxBackups,
		}
		w, closer = lj, lj
	}

	return slog.New(handler(w, c.Format, level)), closer, nil
}

// NewWriter is New with an explicit destination, for tests and the CLI.
func NewWriter(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(handler(w, format, lvl)), nil
}

func handler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps debug/info/warn/error (any case) to a slog.Level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", s)
	}
}
