package session

import (
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/protocol"
)

// Option represents manager option
type Option func(m *Manager)

// WithClientInfo sets the clientInfo advertised in initialize
func WithClientInfo(name, version string) Option {
	return func(m *Manager) {
		m.clientInfo = mcpschema.Implementation{Name: name, Version: version}
	}
}

// WithCapabilities set capabilities
func WithCapabilities(capabilities mcpschema.ClientCapabilities) Option {
	return func(m *Manager) {
		m.capabilities = capabilities
	}
}

func WithProtocolVersion(version string) Option {
	return func(m *Manager) {
		if version != "" {
			m.protocolVersion = version
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) {
		m.logger = log
	}
}

// WithBuilder shares a request builder so ids stay unique across components
func WithBuilder(builder *protocol.Builder) Option {
	return func(m *Manager) {
		m.builder = builder
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}
