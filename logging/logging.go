// Package logging builds the diagnostic logger. Diagnostics always go to
// stderr so they never mix with the response written to stdout.
package logging

import (
	"io"
	"log/slog"
)

// LogLevel represents logging verbosity levels
type LogLevel int

const (
	LogLevelWarn LogLevel = iota
	LogLevelDebug
)

// LevelFor maps the --debug switch to a level.
func LevelFor(debug bool) LogLevel {
	if debug {
		return LogLevelDebug
	}
	return LogLevelWarn
}

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	default:
		return "warn"
	}
}

// ToSlogLevel converts LogLevel to slog.Level
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// New creates a text logger writing to w.
func New(w io.Writer, level LogLevel) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level.ToSlogLevel(),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, LogLevelWarn)
}

// WithComponent returns a logger with component context
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}
