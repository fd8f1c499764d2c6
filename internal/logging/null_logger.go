package logging

import "github.com/modelconv/modelconv/pkg/modelconv"

// NullLogger is a no-op logger that discards all log messages.
// Safe for concurrent use by multiple goroutines.
// Useful for testing and when logging is not desired.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose is a no-op.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Skip is a no-op.
func (l *NullLogger) Skip(format string, args ...interface{}) {}

// Progress is a no-op.
func (l *NullLogger) Progress(format string, args ...interface{}) {}

// Success is a no-op.
func (l *NullLogger) Success(format string, args ...interface{}) {}

// Warn is a no-op.
func (l *NullLogger) Warn(format string, args ...interface{}) {}

// Error is a no-op.
func (l *NullLogger) Error(format string, args ...interface{}) {}

var _ modelconv.Logger = (*NullLogger)(nil)
