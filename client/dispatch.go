package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/protocol"
	"github.com/viant/mcpclient/schema"
)

// Health represents a liveness report
type Health struct {
	Status  string `json:"status"`
	Uptime  uint64 `json:"uptime"`
	Version string `json:"version"`
}

type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// HealthCheck reports local liveness; it never touches the network
func (s *Service) HealthCheck() *Health {
	return &Health{Status: schema.StatusHealthy, Uptime: s.Uptime(), Version: s.Version()}
}

// CheckMcpServer sends health_check to URL (current server URL when empty). It succeeds
// only for a 2xx reply whose result.status equals "healthy" ignoring case; the
// returned error preserves the transport, HTTP, JSON-RPC or status cause.
func (s *Service) CheckMcpServer(ctx context.Context, URL string) (json.RawMessage, error) {
	return s.checkMcpServer(ctx, URL, s.logger)
}

func (s *Service) checkMcpServer(ctx context.Context, URL string, log *logger.Logger) (json.RawMessage, error) {
	URL, err := s.resolve(URL, log)
	if err != nil {
		return nil, err
	}
	result, err := s.send(ctx, URL, schema.MethodHealthCheck, map[string]any{}, log)
	if err != nil {
		return nil, err
	}
	var status string
	if raw := protocol.Field(result, "status"); raw != nil {
		_ = json.Unmarshal(raw, &status)
	}
	if !strings.EqualFold(status, schema.StatusHealthy) {
		err = protocol.NewProtocolError(URL, fmt.Sprintf("unexpected health status %q", status))
		log.Errorf("MCP server %v is unhealthy: %v", URL, err)
		return result, err
	}
	s.registry.Update(URL, func(r *schema.ServerRecord) {
		r.LastHealthCheck = s.now()
	})
	log.Infof("MCP server %v is healthy", URL)
	return result, nil
}

// ListTools sends tools/list to URL (current server URL when empty) and returns the result
func (s *Service) ListTools(ctx context.Context, URL string) (json.RawMessage, error) {
	URL, err := s.resolve(URL, s.logger)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, URL, schema.MethodToolsList, map[string]any{}, s.logger)
}

// QueryTools lists tools of the current server
func (s *Service) QueryTools(ctx context.Context) (json.RawMessage, error) {
	return s.ListTools(ctx, "")
}

// CallTool invokes tool name with args on URL (current server URL when empty). Empty
// args are sent as an empty object. The result's nested "result" payload is returned
// verbatim, or the whole result when the server does not nest it.
func (s *Service) CallTool(ctx context.Context, URL, name string, args json.RawMessage) (json.RawMessage, error) {
	if name == "" {
		return nil, &protocol.Error{Kind: protocol.KindMalformedRequest, Message: "tool name is required"}
	}
	if len(strings.TrimSpace(string(args))) == 0 {
		args = json.RawMessage("{}")
	}
	if !json.Valid(args) {
		return nil, &protocol.Error{Kind: protocol.KindMalformedRequest, Message: fmt.Sprintf("arguments of tool %v are not valid JSON", name)}
	}
	URL, err := s.resolve(URL, s.logger)
	if err != nil {
		return nil, err
	}
	result, err := s.send(ctx, URL, schema.MethodToolsCall, &callToolParams{Name: name, Arguments: args}, s.logger)
	if err != nil {
		return nil, err
	}
	if payload := protocol.Field(result, "result"); payload != nil {
		return payload, nil
	}
	return result, nil
}

// send issues method to URL echoing the registry session id and returns the result
func (s *Service) send(ctx context.Context, URL, method string, params any, log *logger.Logger) (json.RawMessage, error) {
	call, err := s.builder.Build(method, params, s.registry.SessionID(URL))
	if err != nil {
		return nil, &protocol.Error{Kind: protocol.KindMalformedRequest, URL: URL, Err: err}
	}
	log.Debugf("sending %v to %v", method, URL)
	exchange, err := protocol.Send(ctx, s.transport, URL, call)
	if err == nil {
		var result json.RawMessage
		if result, err = exchange.Result(URL); err == nil {
			return result, nil
		}
	}
	log.Errorf("%v on %v failed: %v", method, URL, err)
	return nil, err
}
