package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcpclient/internal/collection"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/protocol"
	"github.com/viant/mcpclient/registry"
	"github.com/viant/mcpclient/schema"
	"github.com/viant/mcpclient/session"
	"github.com/viant/mcpclient/store"
	"github.com/viant/mcpclient/transport"
)

// Version is the engine version reported by Version and health checks
const Version = "0.1.0"

// Service represents the MCP client engine; it is safe for concurrent use
type Service struct {
	registry        *registry.Registry
	sessions        *session.Manager
	transport       transport.Transport
	builder         *protocol.Builder
	serverURL       *collection.Cell[string]
	store           store.KeyValueStore
	sink            logger.Sink
	logger          *logger.Logger
	info            mcpschema.Implementation
	capabilities    mcpschema.ClientCapabilities
	protocolVersion string
	started         time.Time
	now             func() time.Time

	eventsMux sync.Mutex
	events    []MemoryEvent
}

// Registration represents the outcome of InitializeMcpServer
type Registration struct {
	Status schema.Status       `json:"status"`
	Server schema.ServerRecord `json:"server"`
}

// ServerInfo represents all registered servers
type ServerInfo struct {
	DefaultServer string                `json:"defaultServer,omitempty"`
	ServerURL     string                `json:"serverUrl,omitempty"`
	Servers       []schema.ServerRecord `json:"servers"`
}

// Version returns engine version
func (s *Service) Version() string {
	return Version
}

// Uptime returns seconds elapsed since the service was created
func (s *Service) Uptime() uint64 {
	elapsed := s.now().Sub(s.started)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / time.Second)
}

// ServerURL returns the current server URL, falling back to the registry default
func (s *Service) ServerURL() string {
	if URL := s.serverURL.Get(); URL != "" {
		return URL
	}
	return s.registry.Default()
}

// SetServerURL replaces the current server URL and persists it when a store is configured.
// Readers that loaded the previous URL keep using it until their call completes.
func (s *Service) SetServerURL(ctx context.Context, URL string) error {
	prev := s.serverURL.Swap(URL)
	s.logger.Infof("server URL changed from %q to %q", prev.Value, URL)
	if s.store == nil {
		return nil
	}
	if err := s.store.Set(ctx, store.KeyServerURL, URL); err != nil {
		s.logger.Errorf("failed to persist server URL %v: %v", URL, err)
		return fmt.Errorf("failed to persist server URL: %w", err)
	}
	return nil
}

// Restore loads the persisted server URL, if any, from the configured store
func (s *Service) Restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	URL, ok, err := s.store.Get(ctx, store.KeyServerURL)
	if err != nil {
		return fmt.Errorf("failed to restore server URL: %w", err)
	}
	if ok && URL != "" {
		s.serverURL.Swap(URL)
		s.logger.Debugf("restored server URL %v", URL)
	}
	return nil
}

// InitializeMcpServer registers URL and performs the handshake; an already
// registered URL is returned with schema.StatusAlreadyRegistered.
func (s *Service) InitializeMcpServer(ctx context.Context, URL string) (*Registration, error) {
	URL, err := s.resolve(URL, s.logger)
	if err != nil {
		return nil, err
	}
	record, status, err := s.sessions.Initialize(ctx, URL)
	return &Registration{Status: status, Server: record}, err
}

// ReinitializeMcpServer repeats the handshake for a server in failed state
func (s *Service) ReinitializeMcpServer(ctx context.Context, URL string) (*Registration, error) {
	URL, err := s.resolve(URL, s.logger)
	if err != nil {
		return nil, err
	}
	record, status, err := s.sessions.Reinitialize(ctx, URL)
	return &Registration{Status: status, Server: record}, err
}

// ServerInfo returns registered servers
func (s *Service) ServerInfo() *ServerInfo {
	servers, defaultServer := s.registry.Snapshot()
	return &ServerInfo{DefaultServer: defaultServer, ServerURL: s.ServerURL(), Servers: servers}
}

// Server returns the record for URL
func (s *Service) Server(URL string) (schema.ServerRecord, bool) {
	return s.registry.Get(URL)
}

// resolve returns URL or the current server URL; a missing URL is logged at ERROR on log
func (s *Service) resolve(URL string, log *logger.Logger) (string, error) {
	if URL != "" {
		return URL, nil
	}
	if URL = s.ServerURL(); URL != "" {
		return URL, nil
	}
	log.Errorf("no MCP server URL configured; call SetServerURL or InitializeMcpServer with a server URL first")
	return "", &protocol.Error{Kind: protocol.KindMalformedRequest, Message: "no MCP server URL configured"}
}

// New creates a service
func New(options ...Option) *Service {
	ret := &Service{
		registry:        registry.New(),
		builder:         &protocol.Builder{},
		serverURL:       collection.NewCell(""),
		info:            mcpschema.Implementation{Name: "mcpclient", Version: Version},
		protocolVersion: schema.ProtocolVersion,
		now:             time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.transport == nil {
		ret.transport = transport.NewHTTP()
	}
	if ret.sink == nil {
		ret.sink = logger.NewSlogSink(nil)
	}
	ret.started = ret.now()
	ret.logger = logger.New("client", ret.sink)
	ret.sessions = session.New(ret.registry, ret.transport,
		session.WithBuilder(ret.builder),
		session.WithClientInfo(ret.info.Name, ret.info.Version),
		session.WithCapabilities(ret.capabilities),
		session.WithProtocolVersion(ret.protocolVersion),
		session.WithLogger(ret.logger.Logger("session")),
		session.WithClock(ret.now),
	)
	return ret
}
