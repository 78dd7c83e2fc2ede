package client

import (
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/store"
	"github.com/viant/mcpclient/transport"
)

// Option represents service option
type Option func(s *Service)

// WithTransport sets the outbound transport
func WithTransport(aTransport transport.Transport) Option {
	return func(s *Service) {
		s.transport = aTransport
	}
}

// WithSink sets the log sink
func WithSink(sink logger.Sink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

// WithStore sets the store persisting the current server URL
func WithStore(kv store.KeyValueStore) Option {
	return func(s *Service) {
		s.store = kv
	}
}

// WithImplementation sets the client name and version advertised in initialize
func WithImplementation(name, version string) Option {
	return func(s *Service) {
		s.info = mcpschema.Implementation{Name: name, Version: version}
	}
}

// WithCapabilities set capabilities
func WithCapabilities(capabilities mcpschema.ClientCapabilities) Option {
	return func(s *Service) {
		s.capabilities = capabilities
	}
}

func WithProtocolVersion(version string) Option {
	return func(s *Service) {
		s.protocolVersion = version
	}
}

// WithServerURL sets the initial current server URL
func WithServerURL(URL string) Option {
	return func(s *Service) {
		s.serverURL.Swap(URL)
	}
}

// WithClock sets the time source used for uptime and health check timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}
