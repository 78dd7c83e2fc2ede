package session

import (
	"context"
	"encoding/json"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/protocol"
	"github.com/viant/mcpclient/registry"
	"github.com/viant/mcpclient/schema"
	"github.com/viant/mcpclient/transport"
)

const msgNoResult = "no result in handshake response"

// Manager performs handshakes and commits their outcome to the registry
type Manager struct {
	registry        *registry.Registry
	transport       transport.Transport
	builder         *protocol.Builder
	clientInfo      mcpschema.Implementation
	capabilities    mcpschema.ClientCapabilities
	protocolVersion string
	logger          *logger.Logger
	now             func() time.Time
}

// Initialize registers URL and performs the handshake. An already registered URL
// is returned as is with schema.StatusAlreadyRegistered, whatever its state.
func (m *Manager) Initialize(ctx context.Context, URL string) (schema.ServerRecord, schema.Status, error) {
	record, status, created := m.registry.Register(URL)
	if !created {
		m.logger.Debugf("server %v already registered with status %v", URL, record.Status)
		return record, status, nil
	}
	m.logger.Infof("registered server %v", URL)
	return m.handshake(ctx, URL)
}

// Reinitialize repeats the handshake for a server whose previous handshake failed.
// Unknown URLs are initialized; servers in any other state are left untouched.
func (m *Manager) Reinitialize(ctx context.Context, URL string) (schema.ServerRecord, schema.Status, error) {
	if m.registry.Transition(URL, schema.StatusFailed, schema.StatusInitializing) {
		m.logger.Infof("retrying handshake with %v", URL)
		return m.handshake(ctx, URL)
	}
	return m.Initialize(ctx, URL)
}

func (m *Manager) handshake(ctx context.Context, URL string) (schema.ServerRecord, schema.Status, error) {
	params := &mcpschema.InitializeRequestParams{
		ProtocolVersion: m.protocolVersion,
		Capabilities:    m.capabilities,
		ClientInfo:      m.clientInfo,
	}
	call, err := m.builder.Build(schema.MethodInitialize, params, "", protocol.WithHandshakeHeaders())
	if err != nil {
		return m.fail(URL, err)
	}
	m.logger.Debugf("sending %v to %v", schema.MethodInitialize, URL)
	exchange, err := protocol.Send(ctx, m.transport, URL, call)
	if err != nil {
		return m.fail(URL, err)
	}
	response := exchange.Response
	if !response.HasResult() {
		failure := protocol.NewProtocolError(URL, msgNoResult)
		failure.RPC = response.Error
		return m.fail(URL, failure)
	}
	result := &initializeResult{}
	if err = json.Unmarshal(response.Result, result); err != nil {
		return m.fail(URL, protocol.NewDecodeError(URL, err))
	}
	tools := result.tools(m.logger)
	sessionID := exchange.SessionID()
	record, _ := m.registry.Update(URL, func(r *schema.ServerRecord) {
		r.Name = result.name()
		r.Version = result.version()
		r.Tools = tools
		r.SessionID = sessionID
		r.LastHealthCheck = m.now()
		r.Status = schema.StatusConnected
	})
	m.logger.Infof("connected to %v: server %v %v, protocol %v, %d tool(s)", URL, record.Name, record.Version, result.ProtocolVersion, len(tools))
	if record.HasSession() {
		m.notifyInitialized(ctx, URL, record.SessionID)
	}
	return record, schema.StatusConnected, nil
}

// notifyInitialized is best-effort: failures are logged and otherwise ignored
func (m *Manager) notifyInitialized(ctx context.Context, URL, sessionID string) {
	call, err := m.builder.BuildNotification(schema.MethodNotificationInitialized, nil, sessionID)
	if err == nil {
		_, err = m.transport.Post(ctx, URL, call.Header, call.Body)
	}
	if err != nil {
		m.logger.Debugf("%v to %v failed: %v", schema.MethodNotificationInitialized, URL, err)
	}
}

func (m *Manager) fail(URL string, err error) (schema.ServerRecord, schema.Status, error) {
	record, _ := m.registry.Update(URL, func(r *schema.ServerRecord) {
		r.Status = schema.StatusFailed
	})
	m.logger.Errorf("handshake with %v failed: %v; verify the server is running and reachable at that URL", URL, err)
	return record, schema.StatusFailed, err
}

// New creates a handshake manager
func New(reg *registry.Registry, aTransport transport.Transport, options ...Option) *Manager {
	ret := &Manager{
		registry:        reg,
		transport:       aTransport,
		builder:         &protocol.Builder{},
		clientInfo:      mcpschema.Implementation{Name: "mcpclient", Version: "0.1"},
		protocolVersion: schema.ProtocolVersion,
		now:             time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logger.New("session", nil)
	}
	return ret
}
