// Package log provides structured logging setup for volaframe applications.
//
// The library itself never logs: every precondition violation surfaces as an
// error to the caller. This package exists for the application boundary —
// demos, batch jobs, services embedding the models — and for routing the
// warning hook in pkg/errors into a zerolog logger so that numeric
// degeneracy warnings (e.g. QLIKE with a non-positive variance ratio) show
// up as structured log events.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/volaframe/pkg/errors"
)

// NewLogger returns a zerolog.Logger writing JSON to stdout at the given
// level. Unknown level strings fall back to info.
func NewLogger(level string) zerolog.Logger {
	return NewLoggerWithWriter(level, os.Stdout)
}

// NewLoggerWithWriter is NewLogger with a caller-supplied destination,
// mainly for tests.
func NewLoggerWithWriter(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewConsoleLogger returns a human-readable console logger, for demos and
// local runs.
func NewConsoleLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// SetupWarningBridge routes library warnings into the given logger.
// Warning types implementing zerolog.LogObjectMarshaler are embedded as
// structured objects; anything else is logged by message.
func SetupWarningBridge(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.Object("warning", marshaler).Msg(warning.Error())
			return
		}
		event.Msg(warning.Error())
	})
}
