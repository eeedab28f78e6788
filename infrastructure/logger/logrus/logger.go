// ABOUTME: Logrus-backed logger implementation
// ABOUTME: Provides structured JSON logging behind the core Logger interface

package logrus

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	entry *log.Logger
}

// NewLogger creates a new logrus logger writing JSON to the given output
func NewLogger(out io.Writer, level string) *Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(log.Fields(fields)).Error(msg)
}
