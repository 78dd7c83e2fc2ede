// Package logger defines the structured log entries emitted by the MCP client
// engine and the sinks that receive them.
//
// The host supplies a Sink; NewSlogSink adapts a *slog.Logger. A Collector wraps
// any sink and keeps a copy of the entries written through it, which is how
// per-request logs are attached to HandleMessage responses.
package logger
