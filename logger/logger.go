package logger

import (
	"fmt"
	"time"
)

// Logger writes entries for a named module
type Logger struct {
	module string
	sink   Sink
	now    func() time.Time
}

// Logger creates a logger for another module sharing the sink
func (l *Logger) Logger(module string) *Logger {
	return &Logger{module: module, sink: l.sink, now: l.now}
}

// WithSink creates a logger for the same module writing to sink
func (l *Logger) WithSink(sink Sink) *Logger {
	return &Logger{module: l.module, sink: sink, now: l.now}
}

// Sink returns the underlying sink
func (l *Logger) Sink() Sink {
	return l.sink
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	l.sink.Write(Entry{Timestamp: l.now(), Level: level, Message: message, Module: l.module})
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// New creates a module logger, sink defaults to slog.Default()
func New(module string, sink Sink) *Logger {
	if sink == nil {
		sink = NewSlogSink(nil)
	}
	return &Logger{module: module, sink: sink, now: time.Now}
}
