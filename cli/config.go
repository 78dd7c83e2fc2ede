package cli

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	mcp "github.com/viant/mcpclient"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads client options from a YAML document at URL
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*mcp.Options, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &mcp.Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}
