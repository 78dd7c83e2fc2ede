package client

import (
	"context"
	"encoding/json"
)

// Interface defines the operations exposed to a host application
type Interface interface {
	Version() string

	Uptime() uint64

	SetServerURL(ctx context.Context, URL string) error

	ServerURL() string

	// HealthCheck reports local liveness without network access
	HealthCheck() *Health

	// CheckMcpServer probes a server with health_check
	CheckMcpServer(ctx context.Context, URL string) (json.RawMessage, error)

	// InitializeMcpServer registers a server and performs the handshake
	InitializeMcpServer(ctx context.Context, URL string) (*Registration, error)

	ServerInfo() *ServerInfo

	// ListTools lists tools of a server
	ListTools(ctx context.Context, URL string) (json.RawMessage, error)

	// CallTool calls a tool
	CallTool(ctx context.Context, URL, name string, args json.RawMessage) (json.RawMessage, error)

	// HandleMessage handles a raw JSON-RPC request
	HandleMessage(ctx context.Context, raw string) []byte
}

// Ensure Service implements Interface
var _ Interface = (*Service)(nil)
