// Package logging provides the leveled stderr logger used by the CLI.
package logging

import (
	"io"
	"log"
	"os"
)

// Level represents logging verbosity.
type Level int

const (
	// LevelError logs only errors.
	LevelError Level = iota
	// LevelWarn adds warnings.
	LevelWarn
	// LevelInfo adds informational messages.
	LevelInfo
	// LevelDebug logs everything.
	LevelDebug
)

// LevelFromString converts a string representation to a Level.
// Unknown strings default to warn.
func LevelFromString(s string) Level {
	switch s {
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelWarn
	}
}

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// Logger writes timestamped, severity-prefixed lines.
type Logger struct {
	l     *log.Logger
	level Level
}

// New returns a logger writing to stderr at the given level.
func New(level Level) *Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{l: log.New(w, "", log.LstdFlags), level: level}
}

// Errorf logs at error severity.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.logf(LevelError, format, args...)
}

// Warnf logs at warning severity.
func (lg *Logger) Warnf(format string, args ...any) {
	lg.logf(LevelWarn, format, args...)
}

// Infof logs at info severity.
func (lg *Logger) Infof(format string, args ...any) {
	lg.logf(LevelInfo, format, args...)
}

// Debugf logs at debug severity.
func (lg *Logger) Debugf(format string, args ...any) {
	lg.logf(LevelDebug, format, args...)
}

func (lg *Logger) logf(level Level, format string, args ...any) {
	if level > lg.level {
		return
	}
	lg.l.Printf(level.String()+" - "+format, args...)
}
