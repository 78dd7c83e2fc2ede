package client

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/protocol"
	"github.com/viant/mcpclient/schema"
)

// messageResponse is a JSON-RPC response with the log entries produced while handling the request
type messageResponse struct {
	protocol.Response
	Logs []logger.Entry `json:"logs"`
}

// HandleMessage handles a raw JSON-RPC request and always returns an encoded JSON-RPC
// response. Only health_check is dispatched; it probes the current server and reports
// "healthy" or "unhealthy" as a result rather than an error.
func (s *Service) HandleMessage(ctx context.Context, raw string) []byte {
	collector := logger.NewCollector(s.logger.Sink())
	log := s.logger.WithSink(collector)
	response := s.handleMessage(ctx, raw, log)
	ret := &messageResponse{Response: *response, Logs: collector.Entries()}
	data, err := json.Marshal(ret)
	if err != nil {
		// result and id are already valid JSON, this only fails on exotic log content
		fallback := protocol.NewResponse(response.ID, nil, schema.NewInternalError(err.Error()))
		data, _ = json.Marshal(&messageResponse{Response: *fallback, Logs: []logger.Entry{}})
	}
	return data
}

func (s *Service) handleMessage(ctx context.Context, raw string, log *logger.Logger) *protocol.Response {
	request, err := protocol.ParseRequest([]byte(raw))
	if err != nil {
		log.Errorf("failed to parse request: %v", err)
		return protocol.NewResponse(nil, nil, schema.NewParseError(err.Error()))
	}
	id := protocol.RequestID(request)
	log.Debugf("handling %q", request.Method)
	switch strings.TrimSpace(request.Method) {
	case "":
		log.Errorf("request has no method")
		return protocol.NewResponse(id, nil, schema.NewMissingMethod())
	case schema.MethodHealthCheck:
		status := schema.StatusHealthy
		if _, err := s.checkMcpServer(ctx, "", log); err != nil {
			status = schema.StatusUnhealthy
		}
		health := &Health{Status: status, Uptime: s.Uptime(), Version: s.Version()}
		result, err := json.Marshal(health)
		if err != nil {
			return protocol.NewResponse(id, nil, schema.NewInternalError(err.Error()))
		}
		return protocol.NewResponse(id, result, nil)
	default:
		unknown := protocol.NewUnknownMethodError(request.Method)
		log.Errorf("%v", unknown)
		return protocol.NewResponse(id, nil, unknown.RPC)
	}
}
