package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcpclient/schema"
)

// Kind classifies a failed exchange
type Kind string

const (
	KindTransport        Kind = "transport failure"
	KindHTTPStatus       Kind = "http status"
	KindDecode           Kind = "decode"
	KindProtocol         Kind = "protocol"
	KindUnknownMethod    Kind = "unknown method"
	KindMalformedRequest Kind = "malformed request"
)

// Error represents a failed MCP call; the cause is preserved for errors.Is/As
type Error struct {
	Kind    Kind
	URL     string
	Status  int
	Message string
	RPC     *jsonrpc.Error
	Err     error
}

func (e *Error) Error() string {
	var parts []string
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.RPC != nil {
		parts = append(parts, fmt.Sprintf("jsonrpc error %d: %s", e.RPC.Code, e.RPC.Message))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	msg := strings.Join(parts, ": ")
	if e.URL == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.URL, msg)
}

func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.RPC != nil {
		return e.RPC
	}
	return nil
}

// IsKind returns true if err is an *Error of the supplied kind
func IsKind(err error, kind Kind) bool {
	var protoErr *Error
	if errors.As(err, &protoErr) {
		return protoErr.Kind == kind
	}
	return false
}

// RPCError returns the JSON-RPC error object carried by err, if any
func RPCError(err error) (*jsonrpc.Error, bool) {
	var protoErr *Error
	if errors.As(err, &protoErr) && protoErr.RPC != nil {
		return protoErr.RPC, true
	}
	return nil, false
}

func NewTransportError(URL string, err error) *Error {
	return &Error{Kind: KindTransport, URL: URL, Err: err}
}

func NewHTTPStatusError(URL string, status int, body []byte) *Error {
	const maxSnippet = 256
	snippet := string(body)
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet]
	}
	return &Error{Kind: KindHTTPStatus, URL: URL, Status: status, Message: fmt.Sprintf("server returned %d: %s", status, snippet)}
}

func NewDecodeError(URL string, err error) *Error {
	return &Error{Kind: KindDecode, URL: URL, Message: "invalid JSON-RPC response", Err: err}
}

func NewProtocolError(URL string, message string) *Error {
	return &Error{Kind: KindProtocol, URL: URL, Message: message}
}

// NewRPCError wraps a JSON-RPC error object returned by a server
func NewRPCError(URL string, rpcError *jsonrpc.Error) *Error {
	return &Error{Kind: KindProtocol, URL: URL, RPC: rpcError}
}

// NewUnknownMethodError creates an error for a method the dispatcher does not serve;
// RPC carries the method not found object returned to the caller.
func NewUnknownMethodError(method string) *Error {
	return &Error{Kind: KindUnknownMethod, RPC: schema.NewUnknownMethod(method)}
}
