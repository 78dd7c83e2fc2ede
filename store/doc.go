// Package store defines the optional key-value persistence used to remember the
// configured MCP server URL across restarts.
//
// It ships with an in-memory implementation for tests and short lived processes
// and an afs backed implementation that keeps all keys in one JSON document at
// any afs supported URL (local file, mem://, cloud storage).
package store
