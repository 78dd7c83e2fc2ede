// Package protocol implements the JSON-RPC 2.0 codec used by the MCP client
// engine: building request envelopes together with their HTTP headers,
// exchanging them over a transport.Transport and classifying the outcome.
package protocol
