package logger

import (
	"context"
	"log/slog"
	"sync"
)

// Sink accepts log entries
type Sink interface {
	Write(entry Entry)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(entry Entry)

func (f SinkFunc) Write(entry Entry) { f(entry) }

type slogSink struct {
	logger *slog.Logger
}

func (s *slogSink) Write(entry Entry) {
	s.logger.LogAttrs(context.Background(), entry.Level.Slog(), entry.Message,
		slog.String("module", entry.Module),
		slog.Time("ts", entry.Timestamp),
	)
}

// NewSlogSink creates a sink writing to logger, slog.Default() when nil
func NewSlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogSink{logger: logger}
}

// Collector forwards entries to the next sink and keeps a copy of each.
type Collector struct {
	mu      sync.Mutex
	next    Sink
	entries []Entry
}

func (c *Collector) Write(entry Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	if c.next != nil {
		c.next.Write(entry)
	}
}

// Entries returns collected entries
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := make([]Entry, len(c.entries))
	copy(ret, c.entries)
	return ret
}

// NewCollector creates a collector forwarding to next (may be nil)
func NewCollector(next Sink) *Collector {
	return &Collector{next: next}
}
