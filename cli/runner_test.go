package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/mcpclient/client"
)

func newServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		request := struct {
			Method string          `json:"method"`
			ID     json.RawMessage `json:"id"`
		}{}
		_ = json.Unmarshal(data, &request)
		result := `{}`
		switch request.Method {
		case "initialize":
			w.Header().Set("Mcp-Session-Id", "cli-session")
			result = `{"serverInfo":{"name":"cli-test","version":"1.0"},"capabilities":{"tools":{"echo":{}}}}`
		case "notifications/initialized":
			w.WriteHeader(http.StatusAccepted)
			return
		case "health_check":
			result = `{"status":"healthy"}`
		case "tools/list":
			result = `{"tools":[{"name":"echo"}]}`
		case "tools/call":
			if r.Header.Get("Mcp-Session-Id") != "cli-session" {
				http.Error(w, "missing session", http.StatusBadRequest)
				return
			}
			result = `{"result":{"echoed":true}}`
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(request.ID) + `,"result":` + result + `}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	srv := newServer(t)
	testCases := []struct {
		description string
		args        []string
		expect      string
		contains    string
	}{
		{description: "call", args: []string{"-u", srv.URL, "-x", "call", "--tool", "echo", "-a", `{"x":1}`}, expect: `{"echoed":true}`},
		{description: "tools", args: []string{"-u", srv.URL, "-x", "tools"}, expect: `{"tools":[{"name":"echo"}]}`},
		{description: "check", args: []string{"-u", srv.URL, "-x", "check"}, expect: `{"status":"healthy"}`},
		{description: "health", args: []string{"-x", "health"}, contains: `"status": "healthy"`},
		{description: "init", args: []string{"-u", srv.URL, "-x", "init"}, contains: `"cli-test"`},
		{description: "message", args: []string{"-u", srv.URL, "-x", "message", "-m", `{"jsonrpc":"2.0","id":7,"method":"health_check"}`}, contains: `"id":7`},
		{description: "info", args: []string{"-u", srv.URL}, contains: srv.URL},
	}
	for _, tc := range testCases {
		buf := &bytes.Buffer{}
		err := run(context.Background(), tc.args, buf)
		require.NoError(t, err, tc.description)
		if tc.expect != "" {
			assert.JSONEq(t, tc.expect, buf.String(), tc.description)
		}
		if tc.contains != "" {
			assert.Contains(t, buf.String(), tc.contains, tc.description)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.Error(t, run(context.Background(), []string{"-x", "unknown"}, buf))
	assert.Error(t, run(context.Background(), []string{"-x", "tools"}, buf))
	assert.Error(t, run(context.Background(), []string{"-c", filepath.Join(t.TempDir(), "missing.yaml")}, buf))
}

func TestParseOptions_Config(t *testing.T) {
	ctx := context.Background()
	configURL := filepath.Join(t.TempDir(), "mcpclient.yaml")
	require.NoError(t, os.WriteFile(configURL, []byte("name: tester\nversion: \"2.0\"\nserverURL: http://localhost:1/mcp\ntimeoutMs: 1500\n"), 0o644))

	loaded, err := LoadConfig(ctx, afs.New(), configURL)
	require.NoError(t, err)
	assert.Equal(t, "tester", loaded.Name)
	assert.Equal(t, 1500, loaded.TimeoutMs)

	options, err := parseOptions(ctx, []string{"-c", configURL, "-u", "http://localhost:2/mcp"})
	require.NoError(t, err)
	assert.Equal(t, "tester", options.Name)
	assert.Equal(t, "2.0", options.Version)
	assert.Equal(t, "http://localhost:2/mcp", options.ServerURL)
	assert.Equal(t, CommandInfo, options.Command)
	assert.EqualValues(t, 1500, options.Timeout().Milliseconds())
	assert.NotEqual(t, client.Version, options.Version)
}
