package schema

import "github.com/viant/jsonrpc"

// NewParseError creates a parse error for a request that could not be decoded
func NewParseError(detail string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.ParseError, "Failed to parse request: "+detail, nil)
}

// NewMissingMethod creates an invalid request error for a request without method
func NewMissingMethod() *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidRequest, "Invalid request: missing method", nil)
}

// NewUnknownMethod creates a method not found error
func NewUnknownMethod(method string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.MethodNotFound, "Unknown method: "+method, nil)
}

func NewInternalError(message string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InternalError, message, nil)
}
