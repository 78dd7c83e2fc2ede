package schema

import "time"

// Status represents a server lifecycle state
type Status string

const (
	StatusInitializing      Status = "initializing"
	StatusConnected         Status = "connected"
	StatusFailed            Status = "failed"
	StatusAlreadyRegistered Status = "already_registered" // registration outcome only, never stored
)

// ServerRecord represents a registered server and the outcome of its handshake
type ServerRecord struct {
	URL             string           `json:"url"`
	Name            string           `json:"name"`
	Version         string           `json:"version"`
	Status          Status           `json:"status"`
	Tools           []ToolDescriptor `json:"tools"`
	LastHealthCheck time.Time        `json:"lastHealthCheck"`
	SessionID       string           `json:"sessionId,omitempty"`
}

// HasSession returns true if the handshake produced a session id
func (r *ServerRecord) HasSession() bool {
	return r.SessionID != ""
}

// Clone returns a deep copy safe to hand out to readers
func (r *ServerRecord) Clone() ServerRecord {
	ret := *r
	if r.Tools != nil {
		ret.Tools = make([]ToolDescriptor, len(r.Tools))
		for i, tool := range r.Tools {
			ret.Tools[i] = tool.Clone()
		}
	}
	return ret
}

// NewServerRecord creates a record in initializing state
func NewServerRecord(URL string) *ServerRecord {
	return &ServerRecord{URL: URL, Status: StatusInitializing, Tools: []ToolDescriptor{}}
}
