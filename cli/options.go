package cli

import (
	mcp "github.com/viant/mcpclient"
)

const (
	CommandInfo    = "info"
	CommandHealth  = "health"
	CommandInit    = "init"
	CommandCheck   = "check"
	CommandTools   = "tools"
	CommandCall    = "call"
	CommandMessage = "message"
)

// Options represents command line options; values loaded from ConfigURL are overridden by flags
type Options struct {
	mcp.Options
	ConfigURL string `short:"c" long:"config" description:"YAML config URL"`
	Command   string `short:"x" long:"command" description:"command to run" choice:"info" choice:"health" choice:"init" choice:"check" choice:"tools" choice:"call" choice:"message" default:"info"`
	Tool      string `long:"tool" description:"tool name for the call command"`
	Arguments string `short:"a" long:"args" description:"tool arguments as JSON object"`
	Message   string `short:"m" long:"message" description:"raw JSON-RPC request for the message command"`
}
