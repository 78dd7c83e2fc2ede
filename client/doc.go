// Package client implements the MCP client engine exposed to a host application.
//
// A Service owns the server registry, the handshake manager and the current server
// URL. It provides:
//   - `InitializeMcpServer` to register a server and run the initialize handshake.
//   - `CheckMcpServer`, `ListTools` and `CallTool` issuing JSON-RPC requests that
//     carry the server's mcp-session-id once one was issued.
//   - `HandleMessage`, a generic entry point that accepts a raw JSON-RPC request and
//     always answers with a JSON-RPC envelope, attaching the log entries produced
//     while processing it.
//
// The outbound transport, log sink and optional key-value store are supplied by the
// host through options.
//
// Example:
//
//	srv := client.New(client.WithTransport(transport.NewHTTP()))
//	_, err := srv.InitializeMcpServer(ctx, "http://localhost:8081/mcp")
//	tools, err := srv.ListTools(ctx, "")
package client
