package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Collector(t *testing.T) {
	var forwarded []Entry
	collector := NewCollector(SinkFunc(func(e Entry) { forwarded = append(forwarded, e) }))
	log := New("session", collector)

	log.Infof("connected to %s", "http://localhost:8081")
	log.Logger("client").Errorf("plain message")
	log.Debugf("tools: %d", 2)

	entries := collector.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, forwarded, entries)
	assert.Equal(t, LevelInfo, entries[0].Level)
	assert.Equal(t, "connected to http://localhost:8081", entries[0].Message)
	assert.Equal(t, "session", entries[0].Module)
	assert.Equal(t, "client", entries[1].Module)
	assert.Equal(t, LevelError, entries[1].Level)
	assert.Equal(t, "tools: 2", entries[2].Message)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestSlogSink(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := New("registry", NewSlogSink(slog.New(handler)))
	log.Errorf("server %s unreachable", "http://x")
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "module=registry")
	assert.Contains(t, out, "server http://x unreachable")
}

func TestLevel_Slog(t *testing.T) {
	testCases := []struct {
		level  Level
		expect slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelError, slog.LevelError},
		{Level("other"), slog.LevelInfo},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.level.Slog(), string(tc.level))
	}
}
