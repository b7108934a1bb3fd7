// Package logger provides logging functionality for the dependency pruner.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted progress message.
	Logf(format string, args ...interface{})
	// Warnf logs a formatted recoverable warning.
	Warnf(format string, args ...interface{})
	// Debugf logs a formatted detail message, only shown by verbose loggers.
	Debugf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger backed by charmbracelet/log.
type defaultLogger struct {
	mu  sync.Mutex
	log *log.Logger
}

// NewDefaultLogger creates a new default logger writing to stderr.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stderr)
}

// NewVerboseLogger creates a new logger writing to stderr that also shows debug messages.
func NewVerboseLogger() Logger {
	return newLogger(os.Stderr, log.DebugLevel)
}

// NewWriterLogger creates a new default logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return newLogger(w, log.InfoLevel)
}

func newLogger(w io.Writer, level log.Level) Logger {
	return &defaultLogger{
		log: log.NewWithOptions(w, log.Options{
			Prefix: "depprune",
			Level:  level,
		}),
	}
}

// Logf writes a formatted info message with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Infof(format, args...)
}

// Warnf writes a formatted warning with thread safety.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Warnf(format, args...)
}

// Debugf writes a formatted debug message with thread safety.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Debugf(format, args...)
}
