// Package logging wraps zerolog with a small key-value convenience API and
// a process-global logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with convenience methods.
type Logger struct {
	zl zerolog.Logger
}

var global *Logger

func init() {
	global = NewDevelopment()
}

// NewProduction creates a production logger with JSON output.
func NewProduction() *Logger {
	zl := zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// NewDevelopment creates a development logger with pretty console output.
func NewDevelopment() *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	zl := zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// NewWithWriter creates a logger with a custom writer.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// SetGlobal sets the global logger instance.
func SetGlobal(logger *Logger) {
	global = logger
}

// Global returns the global logger instance.
func Global() *Logger {
	return global
}

func applyFields(e *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, isErr := fields[i+1].(error); isErr {
			e = e.Str(key, err.Error())
			continue
		}
		e = e.Interface(key, fields[i+1])
	}
	return e
}

// Debug logs a debug message with alternating key-value fields.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	applyFields(l.zl.Debug(), fields).Msg(msg)
}

// Info logs an info message with alternating key-value fields.
func (l *Logger) Info(msg string, fields ...interface{}) {
	applyFields(l.zl.Info(), fields).Msg(msg)
}

// Warn logs a warning message with alternating key-value fields.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	applyFields(l.zl.Warn(), fields).Msg(msg)
}

// Error logs an error message with alternating key-value fields.
func (l *Logger) Error(msg string, fields ...interface{}) {
	applyFields(l.zl.Error(), fields).Msg(msg)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	applyFields(l.zl.Fatal(), fields).Msg(msg)
}

// With returns a child logger with the given fields attached to every entry.
func (l *Logger) With(fields ...interface{}) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			ctx = ctx.Interface(key, fields[i+1])
		}
	}
	return &Logger{zl: ctx.Logger()}
}
