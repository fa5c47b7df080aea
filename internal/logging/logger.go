// Package logging provides the leveled, component-prefixed logger shared by
// every part of passthrufs.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	// LevelError only logs errors
	LevelError LogLevel = iota
	// LevelWarn logs warnings and errors
	LevelWarn
	// LevelInfo logs general information, warnings and errors
	LevelInfo
	// LevelDebug logs detailed debug information and all above
	LevelDebug
	// LevelTrace logs every FUSE request and host call
	LevelTrace
)

// slog has no trace level; one step below debug is the usual convention.
const slogLevelTrace = slog.LevelDebug - 4

var slogLevels = map[LogLevel]slog.Level{
	LevelError: slog.LevelError,
	LevelWarn:  slog.LevelWarn,
	LevelInfo:  slog.LevelInfo,
	LevelDebug: slog.LevelDebug,
	LevelTrace: slogLevelTrace,
}

var levelNames = map[string]LogLevel{
	"ERROR": LevelError,
	"WARN":  LevelWarn,
	"INFO":  LevelInfo,
	"DEBUG": LevelDebug,
	"TRACE": LevelTrace,
}

// ParseLevel converts a level name such as "debug" or "TRACE".
func ParseLevel(name string) (LogLevel, bool) {
	level, ok := levelNames[strings.ToUpper(strings.TrimSpace(name))]
	return level, ok
}

// Logger is a printf-style front end over a slog.Logger. Loggers derived
// with WithPrefix share the level of their parent.
type Logger struct {
	level *slog.LevelVar
	slog  *slog.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the default logger instance
func GetLogger() *Logger {
	once.Do(func() {
		defaultLogger = NewLogger(os.Stderr, os.Getenv("LOG_FORMAT") == "json")

		if level, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
			defaultLogger.SetLevel(level)
		}
	})
	return defaultLogger
}

// NewLogger creates a logger writing to w at INFO level, as text or as JSON.
func NewLogger(w io.Writer, json bool) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slogLevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		level: level,
		slog:  slog.New(handler),
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.level.Set(slogLevels[level])
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	lvl := slogLevels[level]
	if !l.slog.Enabled(context.Background(), lvl) {
		return
	}
	l.slog.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Trace logs a trace message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.log(LevelTrace, format, args...)
}

// WithPrefix returns a logger tagging every record with component=prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		level: l.level,
		slog:  l.slog.With(slog.String("component", prefix)),
	}
}
