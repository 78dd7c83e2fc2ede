// Package transport defines the outbound POST collaborator used by the MCP
// client engine and a default net/http implementation.
package transport

import (
	"context"
	"net/http"
)

// Reply represents a raw HTTP reply
type Reply struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK returns true for 2xx status
func (r *Reply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Transport posts a JSON body to a URL. An error is returned only for failures
// below HTTP (connection refused, DNS, body read); non-2xx replies are not errors.
type Transport interface {
	Post(ctx context.Context, URL string, header http.Header, body []byte) (*Reply, error)
}

// Func adapts a function to Transport
type Func func(ctx context.Context, URL string, header http.Header, body []byte) (*Reply, error)

func (f Func) Post(ctx context.Context, URL string, header http.Header, body []byte) (*Reply, error) {
	return f(ctx, URL, header, body)
}
