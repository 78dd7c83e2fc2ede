// Package session drives the MCP handshake: it turns a bare server URL into a
// registry record holding the server identity, its tool catalog and an optional
// session id.
//
// The handshake sends initialize, reads serverInfo and capabilities.tools from
// the result, captures the mcp-session-id reply header and, when a session was
// issued, fires a best-effort notifications/initialized. The registry lock is
// never held while a request is in flight.
package session
