package logging

import (
	"context"
	"io"
	"maps"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogger is a Logger backed by logrus.
// Debug/Info/Warn/Error/Fatal map onto the logrus levels of the same name;
// Fatal exits the process after logging.
type DefaultLogger struct {
	base  *logrus.Logger
	entry *logrus.Entry
}

// NewDefaultLogger creates a logger writing text records to stderr
func NewDefaultLogger() *DefaultLogger {
	return NewDefaultLoggerWithOutput(os.Stderr)
}

// NewDefaultLoggerWithOutput creates a logger writing uncolored text records to w
func NewDefaultLoggerWithOutput(w io.Writer) *DefaultLogger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: w != os.Stderr && w != os.Stdout,
	})
	base.SetLevel(logrus.InfoLevel)

	return &DefaultLogger{
		base:  base,
		entry: logrus.NewEntry(base),
	}
}

func toLogrusLevel(level Level) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

func (d *DefaultLogger) with(fields []Fields) *logrus.Entry {
	if len(fields) == 0 {
		return d.entry
	}
	merged := make(logrus.Fields)
	for _, f := range fields {
		maps.Copy(merged, logrus.Fields(f))
	}
	return d.entry.WithFields(merged)
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.with(fields).Debug(msg)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.with(fields).Info(msg)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.with(fields).Warn(msg)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.with(fields).WithError(err).Error(msg)
}

func (d *DefaultLogger) Fatal(err error, msg string, fields ...Fields) {
	d.with(fields).WithError(err).Fatal(msg)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	return &DefaultLogger{
		base:  d.base,
		entry: d.entry.WithFields(logrus.Fields(fields)),
	}
}

func (d *DefaultLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return d.WithFields(fields)
	}
	return d
}

// SetLevel changes the level of the underlying logrus logger, which is shared
// by every logger derived through WithFields.
func (d *DefaultLogger) SetLevel(level Level) {
	d.base.SetLevel(toLogrusLevel(level))
}

// NoOpLogger discards everything. Tests and callers that want a silent core
// pass it to SetGlobalLogger or to component constructors.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, fields ...Fields)            {}
func (n *NoOpLogger) Info(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Warn(msg string, fields ...Fields)             {}
func (n *NoOpLogger) Error(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) Fatal(err error, msg string, fields ...Fields) {}
func (n *NoOpLogger) WithFields(fields Fields) Logger               { return n }
func (n *NoOpLogger) WithContext(ctx context.Context) Logger        { return n }
func (n *NoOpLogger) SetLevel(level Level)                          {}
