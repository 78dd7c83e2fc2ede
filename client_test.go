package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcpclient/client"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/schema"
)

func TestOptions_Init(t *testing.T) {
	options := &Options{}
	options.Init()
	assert.Equal(t, "mcpclient", options.Name)
	assert.Equal(t, client.Version, options.Version)

	options = &Options{Name: "host"}
	options.Init()
	assert.Equal(t, "host", options.Name)
	assert.Equal(t, client.Version, options.Version)

	options = &Options{Version: "3.1"}
	options.Init()
	assert.Equal(t, "mcpclient", options.Name)
	assert.Equal(t, "3.1", options.Version)
}

func TestNew_HTTPClient(t *testing.T) {
	var clientInfo map[string]any
	var used bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := struct {
			Method string `json:"method"`
			Params struct {
				ClientInfo map[string]any `json:"clientInfo"`
			} `json:"params"`
		}{}
		_ = json.NewDecoder(r.Body).Decode(&request)
		if request.Method == "initialize" {
			clientInfo = request.Params.ClientInfo
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	}))
	defer srv.Close()
	httpClient := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		used = true
		return http.DefaultTransport.RoundTrip(r)
	})}

	service, err := New(context.Background(), &Options{ServerURL: srv.URL, Version: "3.1", HTTPClient: httpClient, TimeoutMs: 2000})
	require.NoError(t, err)
	registration, err := service.InitializeMcpServer(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, schema.StatusConnected, registration.Status)
	assert.True(t, used)
	assert.Equal(t, "mcpclient", clientInfo["name"])
	assert.Equal(t, "3.1", clientInfo["version"])
}

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNew(t *testing.T) {
	ctx := context.Background()
	storeURL := filepath.Join(t.TempDir(), "state.json")
	collector := logger.NewCollector(nil)

	service, err := New(ctx, &Options{ServerURL: "http://localhost:1/mcp", StoreURL: storeURL, Sink: collector})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1/mcp", service.ServerURL())
	require.NoError(t, service.SetServerURL(ctx, "http://localhost:2/mcp"))
	assert.NotEmpty(t, collector.Entries())

	restored, err := New(ctx, &Options{ServerURL: "http://localhost:1/mcp", StoreURL: storeURL})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:2/mcp", restored.ServerURL())

	empty, err := New(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty.ServerURL())
}
