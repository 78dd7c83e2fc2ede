package schema

import mcpschema "github.com/viant/mcp-protocol/schema"

const (
	MethodInitialize              = mcpschema.MethodInitialize
	MethodToolsList               = mcpschema.MethodToolsList
	MethodToolsCall               = mcpschema.MethodToolsCall
	MethodNotificationInitialized = mcpschema.MethodNotificationInitialized

	// MethodHealthCheck is not part of MCP; servers speaking this dialect answer it with {"status":"healthy"}.
	MethodHealthCheck = "health_check"
)

// ProtocolVersion is the MCP revision advertised during the handshake.
const ProtocolVersion = "2025-03-26"

const (
	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderSessionID      = "mcp-session-id"

	ContentTypeJSON     = "application/json"
	AcceptHandshake     = "application/json, text/event-stream"
	AcceptLanguageAny   = "*"
	StatusHealthy       = "healthy"
	StatusUnhealthy     = "unhealthy"
	DefaultServerName   = "Unknown"
	DefaultVersionValue = "unknown"
)
