// Package mcp provides a high-level entry point for the MCP client engine.
//
// The engine itself lives in the client package; this package wires it with the
// default HTTP transport, an optional afs backed store for the current server URL
// and a logger sink, all driven by an Options structure that can be populated from
// CLI flags or a YAML configuration file.
//
// Example:
//
//	service, _ := mcp.New(ctx, &mcp.Options{ServerURL: "http://localhost:8080/mcp"})
//	registration, _ := service.InitializeMcpServer(ctx, "")
//	result, _ := service.CallTool(ctx, "", "echo", json.RawMessage(`{"text":"hi"}`))
package mcp
