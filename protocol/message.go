package protocol

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/viant/jsonrpc"
)

// Response represents a JSON-RPC 2.0 response. Replies are decoded leniently: a
// reply without result or error is left for Exchange.Result to classify.
type Response struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *jsonrpc.Error  `json:"error,omitempty"`
}

// HasResult returns true when a non null result is present
func (r *Response) HasResult() bool {
	return isPresent(r.Result)
}

// ParseRequest decodes a raw request; numeric ids are kept as json.Number so they are echoed verbatim
func ParseRequest(data []byte) (*jsonrpc.Request, error) {
	type jsonrpcRequest jsonrpc.Request
	request := &jsonrpcRequest{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(request); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after request")
	}
	return (*jsonrpc.Request)(request), nil
}

// RequestID returns the encoded id of request, null when absent
func RequestID(request *jsonrpc.Request) json.RawMessage {
	data, err := json.Marshal(request.Id)
	if err != nil {
		return nil
	}
	return data
}

// ParseResponse decodes a raw response
func ParseResponse(data []byte) (*Response, error) {
	ret := &Response{}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Field returns the raw value of a top level object field, nil when absent or null
func Field(data json.RawMessage, name string) json.RawMessage {
	if !isPresent(data) {
		return nil
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	value := fields[name]
	if !isPresent(value) {
		return nil
	}
	return value
}

func isPresent(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// NewResponse creates a response echoing id; a nil id is encoded as null
func NewResponse(id json.RawMessage, result json.RawMessage, rpcError *jsonrpc.Error) *Response {
	return &Response{Jsonrpc: jsonrpc.Version, ID: id, Result: result, Error: rpcError}
}
