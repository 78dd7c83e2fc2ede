package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/mcpclient/client"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/store"
	"github.com/viant/mcpclient/transport"
)

// Options defines options for configuring an MCP client service.
type Options struct {
	Name            string `yaml:"name" json:"name,omitempty"  short:"n" long:"name" description:"client name advertised in initialize"`
	Version         string `yaml:"version,omitempty" json:"version,omitempty"  short:"v" long:"client-version" description:"client version advertised in initialize"`
	ProtocolVersion string `yaml:"protocol,omitempty" json:"protocol,omitempty"  short:"p" long:"protocol" description:"mcp protocol"`
	ServerURL       string `yaml:"serverURL,omitempty" json:"serverURL,omitempty"  short:"u" long:"url" description:"mcp server url"`
	StoreURL        string `yaml:"storeURL,omitempty" json:"storeURL,omitempty"  short:"s" long:"store" description:"afs URL of a JSON document persisting the current server url"`
	// TimeoutMs bounds each HTTP exchange; zero disables the client side timeout.
	TimeoutMs int `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty"  short:"t" long:"timeout" description:"http timeout in ms"`

	Sink logger.Sink `yaml:"-" json:"-"`

	// HTTPClient, if set, is used for every exchange; TimeoutMs still applies on top of it.
	HTTPClient *http.Client `yaml:"-" json:"-"`
}

func (o *Options) Init() {
	if o.Name == "" {
		o.Name = "mcpclient"
	}
	if o.Version == "" {
		o.Version = client.Version
	}
}

// Timeout returns HTTP timeout
func (o *Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutMs) * time.Millisecond
}

// New creates a client service configured via Options; a server URL persisted in
// the store takes precedence over Options.ServerURL.
func New(ctx context.Context, options *Options) (*client.Service, error) {
	if options == nil {
		options = &Options{}
	}
	options.Init()
	var transportOptions []transport.Option
	if options.HTTPClient != nil {
		transportOptions = append(transportOptions, transport.WithHTTPClient(options.HTTPClient))
	}
	transportOptions = append(transportOptions, transport.WithTimeout(options.Timeout()))
	var clientOptions = []client.Option{
		client.WithImplementation(options.Name, options.Version),
		client.WithTransport(transport.NewHTTP(transportOptions...)),
	}
	if options.ProtocolVersion != "" {
		clientOptions = append(clientOptions, client.WithProtocolVersion(options.ProtocolVersion))
	}
	if options.ServerURL != "" {
		clientOptions = append(clientOptions, client.WithServerURL(options.ServerURL))
	}
	if options.Sink != nil {
		clientOptions = append(clientOptions, client.WithSink(options.Sink))
	}
	if options.StoreURL != "" {
		clientOptions = append(clientOptions, client.WithStore(store.NewAfsStore(options.StoreURL)))
	}
	service := client.New(clientOptions...)
	if err := service.Restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to create mcp client: %w", err)
	}
	return service, nil
}
