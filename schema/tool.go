package schema

type (
	// ToolDescriptor describes a tool advertised by a server during the handshake.
	ToolDescriptor struct {
		Name        string                `json:"name" yaml:"name"`
		Description string                `json:"description" yaml:"description"`
		Version     string                `json:"version" yaml:"version"`
		Parameters  []ParameterDescriptor `json:"parameters" yaml:"parameters"`
	}

	// ParameterDescriptor describes a single tool parameter.
	ParameterDescriptor struct {
		Name        string `json:"name" yaml:"name" mapstructure:"name"`
		Description string `json:"description" yaml:"description" mapstructure:"description"`
		Required    bool   `json:"required" yaml:"required" mapstructure:"required"`
		Type        string `json:"type" yaml:"type" mapstructure:"type"`
	}
)

// Clone returns a deep copy
func (t ToolDescriptor) Clone() ToolDescriptor {
	ret := t
	if t.Parameters != nil {
		ret.Parameters = make([]ParameterDescriptor, len(t.Parameters))
		copy(ret.Parameters, t.Parameters)
	}
	return ret
}
