package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	mcp "github.com/viant/mcpclient"
)

func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	options, err := parseOptions(ctx, args)
	if err != nil {
		return err
	}
	service, err := mcp.New(ctx, &options.Options)
	if err != nil {
		return err
	}
	switch options.Command {
	case CommandInfo:
		return encode(w, service.Metadata())
	case CommandHealth:
		return encode(w, service.HealthCheck())
	case CommandMessage:
		_, err = w.Write(append(service.HandleMessage(ctx, options.Message), '\n'))
		return err
	}

	// every process starts with an empty registry, the handshake obtains the session id
	registration, err := service.InitializeMcpServer(ctx, "")
	if err != nil {
		return err
	}
	var result json.RawMessage
	switch options.Command {
	case CommandInit:
		return encode(w, registration)
	case CommandCheck:
		result, err = service.CheckMcpServer(ctx, "")
	case CommandTools:
		result, err = service.QueryTools(ctx)
	case CommandCall:
		result, err = service.CallTool(ctx, "", options.Tool, json.RawMessage(options.Arguments))
	default:
		return fmt.Errorf("unsupported command: %v", options.Command)
	}
	if err != nil {
		return err
	}
	return encode(w, result)
}

// parseOptions parses args on top of the config file named by --config
func parseOptions(ctx context.Context, args []string) (*Options, error) {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	if options.ConfigURL == "" {
		return options, nil
	}
	config, err := LoadConfig(ctx, afs.New(), options.ConfigURL)
	if err != nil {
		return nil, err
	}
	ret := &Options{Options: *config}
	if _, err = flags.ParseArgs(ret, args); err != nil {
		return nil, err
	}
	return ret, nil
}

func encode(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
