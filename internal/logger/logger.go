// Package logger provides a simple logging interface for lcdstat components.
// Packages log debug, info, warn and error messages through a printf-style
// interface; the default implementation writes structured text via log/slog.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "LCDSTAT_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

var debugForced atomic.Bool

// SetDebug forces debug output on regardless of LCDSTAT_DEBUG (--verbose).
func SetDebug(on bool) {
	debugForced.Store(on)
}

func debugEnabled() bool {
	return debugForced.Load() || os.Getenv(DebugEnv) != ""
}

// envLogger implements Logger on top of a slog text handler.
// Debug messages are only emitted when debug is enabled.
type envLogger struct {
	log *slog.Logger
}

// NewEnvLogger creates a logger writing to stderr. The component name is
// attached to every record (e.g., "lcd" or "buttons").
func NewEnvLogger(component string) Logger {
	return NewWriterLogger(os.Stderr, component)
}

// NewWriterLogger is NewEnvLogger with an explicit destination.
func NewWriterLogger(w io.Writer, component string) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := slog.New(h)
	if component != "" {
		l = l.With("component", component)
	}
	return &envLogger{log: l}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if debugEnabled() {
		l.log.Debug(fmt.Sprintf(format, args...))
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the package-level logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
