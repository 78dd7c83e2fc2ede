package session

import (
	"encoding/json"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/viant/mcpclient/logger"
	"github.com/viant/mcpclient/schema"
)

type (
	initializeResult struct {
		ProtocolVersion string          `json:"protocolVersion"`
		ServerInfo      *serverInfo     `json:"serverInfo"`
		Capabilities    json.RawMessage `json:"capabilities"`
	}

	serverInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	capabilities struct {
		Tools map[string]any `json:"tools"`
	}
)

// name returns server name or the default
func (r *initializeResult) name() string {
	if r.ServerInfo == nil || r.ServerInfo.Name == "" {
		return schema.DefaultServerName
	}
	return r.ServerInfo.Name
}

func (r *initializeResult) version() string {
	if r.ServerInfo == nil || r.ServerInfo.Version == "" {
		return schema.DefaultVersionValue
	}
	return r.ServerInfo.Version
}

// tools decodes capabilities.tools, a map of tool name to descriptor fields.
// Tools and parameters that are not objects, or whose parameters cannot be decoded,
// are skipped and logged at DEBUG; tools are sorted by name.
func (r *initializeResult) tools(log *logger.Logger) []schema.ToolDescriptor {
	ret := []schema.ToolDescriptor{}
	if len(r.Capabilities) == 0 {
		return ret
	}
	caps := capabilities{}
	if err := json.Unmarshal(r.Capabilities, &caps); err != nil {
		log.Debugf("ignoring capabilities: %v", err)
		return ret
	}
	for name, raw := range caps.Tools {
		fields, ok := raw.(map[string]any)
		if !ok {
			log.Debugf("skipping tool %v: descriptor is not an object", name)
			continue
		}
		ret = append(ret, decodeTool(name, fields, log))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}

func decodeTool(name string, fields map[string]any, log *logger.Logger) schema.ToolDescriptor {
	tool := schema.ToolDescriptor{
		Name:        name,
		Description: stringField(fields, "description", ""),
		Version:     stringField(fields, "version", schema.DefaultVersionValue),
		Parameters:  []schema.ParameterDescriptor{},
	}
	params, ok := fields["parameters"].([]any)
	if !ok {
		return tool
	}
	for i, item := range params {
		if _, ok := item.(map[string]any); !ok {
			log.Debugf("skipping parameter %d of tool %v: not an object", i, name)
			continue
		}
		param, err := decodeParameter(item)
		if err != nil {
			log.Debugf("skipping parameter %d of tool %v: %v", i, name, err)
			continue
		}
		tool.Parameters = append(tool.Parameters, param)
	}
	return tool
}

func decodeParameter(item any) (schema.ParameterDescriptor, error) {
	param := schema.ParameterDescriptor{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &param,
	})
	if err != nil {
		return param, err
	}
	err = decoder.Decode(item)
	return param, err
}

func stringField(fields map[string]any, key, defaultValue string) string {
	if value, ok := fields[key].(string); ok {
		return value
	}
	return defaultValue
}
