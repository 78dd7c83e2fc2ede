package protocol

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcpclient/schema"
	"github.com/viant/mcpclient/transport"
)

// Call represents a fully formed outgoing message: envelope, encoded body and headers.
// Request is nil for notifications.
type Call struct {
	Method  string
	Request *jsonrpc.Request
	Body    []byte
	Header  http.Header
}

// CallOption customizes a call
type CallOption func(c *Call)

// WithHandshakeHeaders sets the headers required by the initialize request
func WithHandshakeHeaders() CallOption {
	return func(c *Call) {
		c.Header.Set(schema.HeaderAccept, schema.AcceptHandshake)
		c.Header.Set(schema.HeaderAcceptLanguage, schema.AcceptLanguageAny)
	}
}

// Builder creates calls with sequential request ids
type Builder struct {
	nextID atomic.Uint64
}

// Build creates a request for method; sessionID is echoed in the session header when not empty
func (b *Builder) Build(method string, params any, sessionID string, options ...CallOption) (*Call, error) {
	request, err := jsonrpc.NewRequest(method, paramsOrEmpty(params))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %v request: %w", method, err)
	}
	request.Id = b.nextID.Add(1)
	call := newCall(method, sessionID, options)
	call.Request = request
	if call.Body, err = json.Marshal(request); err != nil {
		return nil, fmt.Errorf("failed to encode %v request: %w", method, err)
	}
	return call, nil
}

// BuildNotification creates a notification for method; no id is allocated
func (b *Builder) BuildNotification(method string, params any, sessionID string, options ...CallOption) (*Call, error) {
	notification, err := jsonrpc.NewNotification(method, paramsOrEmpty(params))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %v notification: %w", method, err)
	}
	call := newCall(method, sessionID, options)
	if call.Body, err = json.Marshal(notification); err != nil {
		return nil, fmt.Errorf("failed to encode %v notification: %w", method, err)
	}
	return call, nil
}

func newCall(method, sessionID string, options []CallOption) *Call {
	call := &Call{Method: method, Header: http.Header{}}
	call.Header.Set(schema.HeaderContentType, schema.ContentTypeJSON)
	call.Header.Set(schema.HeaderAccept, schema.ContentTypeJSON)
	if sessionID != "" {
		call.Header.Set(schema.HeaderSessionID, sessionID)
	}
	for _, opt := range options {
		opt(call)
	}
	return call
}

// paramsOrEmpty replaces nil params with an empty object so the body never carries "params":null
func paramsOrEmpty(params any) any {
	if params == nil {
		return map[string]any{}
	}
	return params
}

// Exchange represents a completed round trip
type Exchange struct {
	Reply    *transport.Reply
	Response *Response
}

// SessionID returns the session id header of the reply
func (e *Exchange) SessionID() string {
	if e.Reply == nil || e.Reply.Header == nil {
		return ""
	}
	return e.Reply.Header.Get(schema.HeaderSessionID)
}

// Send posts call to URL; transport failures, non-2xx replies and undecodable
// bodies are returned as *Error. A JSON-RPC error object is not treated as a failure here.
func Send(ctx context.Context, aTransport transport.Transport, URL string, call *Call) (*Exchange, error) {
	reply, err := aTransport.Post(ctx, URL, call.Header, call.Body)
	if err != nil {
		return nil, NewTransportError(URL, err)
	}
	if !reply.OK() {
		return nil, NewHTTPStatusError(URL, reply.Status, reply.Body)
	}
	response, err := ParseResponse(reply.Body)
	if err != nil {
		return nil, NewDecodeError(URL, err)
	}
	return &Exchange{Reply: reply, Response: response}, nil
}

// Result returns the response result or the JSON-RPC error as *Error;
// a response carrying neither is a protocol error.
func (e *Exchange) Result(URL string) (json.RawMessage, error) {
	if e.Response.Error != nil {
		return nil, NewRPCError(URL, e.Response.Error)
	}
	if !e.Response.HasResult() {
		return nil, NewProtocolError(URL, "response has neither result nor error")
	}
	return e.Response.Result, nil
}
