package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultMaxBodySize = 10 << 20

// HTTP implements Transport with net/http
type HTTP struct {
	client      *http.Client
	maxBodySize int64
}

// Option represents HTTP transport option
type Option func(t *HTTP)

// WithHTTPClient sets http client
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTP) {
		t.client = client
	}
}

// WithTimeout sets client timeout without mutating a client supplied with WithHTTPClient
func WithTimeout(timeout time.Duration) Option {
	return func(t *HTTP) {
		if timeout > 0 {
			client := *t.client
			client.Timeout = timeout
			t.client = &client
		}
	}
}

// WithMaxBodySize limits how much of a reply body is read
func WithMaxBodySize(size int64) Option {
	return func(t *HTTP) {
		t.maxBodySize = size
	}
}

// Post sends body to URL
func (t *HTTP) Post(ctx context.Context, URL string, header http.Header, body []byte) (*Reply, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create HTTP request: %w", err)
	}
	for k, values := range header {
		for _, v := range values {
			request.Header.Add(k, v)
		}
	}
	response, err := t.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("HTTP request to %s: %w", URL, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(response.Body, 1<<20))
		_ = response.Body.Close()
	}()
	data, err := io.ReadAll(io.LimitReader(response.Body, t.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body from %s: %w", URL, err)
	}
	return &Reply{Status: response.StatusCode, Header: response.Header, Body: data}, nil
}

// NewHTTP creates an HTTP transport
func NewHTTP(options ...Option) *HTTP {
	ret := &HTTP{client: &http.Client{}, maxBodySize: defaultMaxBodySize}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
