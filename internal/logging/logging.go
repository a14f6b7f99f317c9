// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

// ParseLevel maps a level name onto a zerolog level.
func ParseLevel(logLevel string) (zerolog.Level, error) {
	switch logLevel {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unsupported log level: %q", logLevel)
	}
}

// New returns a logger writing to out in the given format ("json", or empty
// for human-readable console output). logr V(1) is zerolog debug.
func New(logFormat, logLevel string, out io.Writer) (logr.Logger, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return logr.Logger{}, err
	}

	var zl zerolog.Logger
	switch logFormat {
	case "json":
		zl = zerolog.New(out).Level(level).With().Timestamp().Logger()
	case "":
		zl = zerolog.New(
			zerolog.ConsoleWriter{
				Out:        out,
				TimeFormat: time.RFC3339,
				NoColor:    true,
			},
		).Level(level).With().Timestamp().Logger()
	default:
		return logr.Logger{}, fmt.Errorf("unsupported log format: %q", logFormat)
	}

	return zerologr.New(&zl), nil
}
