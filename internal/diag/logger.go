// Package diag provides a structured JSON-lines logger for side-channel
// diagnostics of non-fatal conditions — see spec 7. The solver packages do
// not log; cmd/ballistics-cli reports the atmosphere warnings from
// HitResult.Warnings (above-troposphere, clamped temperature) through it.
package diag

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log verbosity ordering.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// Field represents a structured logging attribute.
type Field struct {
	Key   string
	Value any
}

// String returns a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Float64 returns a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Int returns an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Err returns an error field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger emits JSON-formatted structured logs with optional contextual fields.
// Unlike the teacher's broker logger, this one owns no file lifecycle: the
// caller supplies an io.Writer (or uses the nop default), matching how a
// library embeds logging without taking over process-level concerns.
type Logger struct {
	mu     sync.Mutex
	level  Level
	writer io.Writer
	fields map[string]any
}

var (
	globalMu     sync.RWMutex
	globalLogger = NewNopLogger()
)

// New constructs a logger writing JSON lines to w at or above level.
func New(w io.Writer, level Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, writer: w, fields: make(map[string]any)}
}

// NewNopLogger returns a logger that discards every record.
func NewNopLogger() *Logger {
	return &Logger{level: ErrorLevel + 1, writer: io.Discard, fields: make(map[string]any)}
}

// NewTestLogger returns a logger suitable for use in tests: it discards
// output but runs every formatting path so a test still exercises it.
func NewTestLogger() *Logger {
	return &Logger{level: DebugLevel, writer: io.Discard, fields: make(map[string]any)}
}

// ReplaceGlobals swaps the package-level default logger used by L().
func ReplaceGlobals(logger *Logger) {
	if logger == nil {
		return
	}
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// L returns the current global logger.
func L() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// With augments the logger with additional structured fields, returning a
// new logger so the receiver is never mutated by callers sharing it.
func (l *Logger) With(fields ...Field) *Logger {
	if l == nil {
		return L().With(fields...)
	}
	clone := &Logger{
		level:  l.level,
		writer: l.writer,
		fields: make(map[string]any, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		clone.fields[k] = v
	}
	for _, field := range fields {
		clone.fields[field.Key] = field.Value
	}
	return clone
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields ...Field) { l.log(DebugLevel, message, fields...) }

// Info logs an informational message.
func (l *Logger) Info(message string, fields ...Field) { l.log(InfoLevel, message, fields...) }

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields ...Field) { l.log(WarnLevel, message, fields...) }

// Error logs an error message.
func (l *Logger) Error(message string, fields ...Field) { l.log(ErrorLevel, message, fields...) }

func (l *Logger) log(level Level, message string, fields ...Field) {
	if l == nil {
		L().log(level, message, fields...)
		return
	}
	if level < l.level {
		return
	}
	payload := make(map[string]any, len(l.fields)+len(fields)+2)
	for k, v := range l.fields {
		payload[k] = v
	}
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	payload["level"] = level.String()
	payload["message"] = message
	for _, field := range fields {
		payload[field.Key] = field.Value
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.writer.Write(append(data, '\n'))
}

func parseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// LevelFromString parses a level name, defaulting to InfoLevel on an unknown
// or empty value.
func LevelFromString(raw string) Level {
	return parseLevel(raw)
}
