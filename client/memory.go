package client

import (
	"strings"

	"github.com/google/uuid"
	"github.com/viant/mcpclient/protocol"
)

// MemoryEvent represents a host supplied note kept in memory for diagnostics
type MemoryEvent struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Metadata represents a diagnostic snapshot of the service
type Metadata struct {
	Version       string        `json:"version"`
	Uptime        uint64        `json:"uptime"`
	Timestamp     int64         `json:"timestamp"`
	ServerURL     string        `json:"serverUrl,omitempty"`
	DefaultServer string        `json:"defaultServer,omitempty"`
	Servers       int           `json:"servers"`
	MemoryEvents  []MemoryEvent `json:"memoryEvents"`
}

// AddMemoryEvent records text
func (s *Service) AddMemoryEvent(text string) (MemoryEvent, error) {
	if strings.TrimSpace(text) == "" {
		return MemoryEvent{}, &protocol.Error{Kind: protocol.KindMalformedRequest, Message: "memory event text is empty"}
	}
	event := MemoryEvent{ID: uuid.NewString(), Text: text, Timestamp: s.now().UnixMilli()}
	s.eventsMux.Lock()
	s.events = append(s.events, event)
	s.eventsMux.Unlock()
	s.logger.Debugf("memory event %v added", event.ID)
	return event, nil
}

// ClearMemoryEvents removes all memory events
func (s *Service) ClearMemoryEvents() {
	s.eventsMux.Lock()
	s.events = nil
	s.eventsMux.Unlock()
}

// MemoryEvents returns recorded events in insertion order
func (s *Service) MemoryEvents() []MemoryEvent {
	s.eventsMux.Lock()
	defer s.eventsMux.Unlock()
	ret := make([]MemoryEvent, len(s.events))
	copy(ret, s.events)
	return ret
}

// Metadata returns a diagnostic snapshot
func (s *Service) Metadata() *Metadata {
	servers, defaultServer := s.registry.Snapshot()
	return &Metadata{
		Version:       s.Version(),
		Uptime:        s.Uptime(),
		Timestamp:     s.now().UnixMilli(),
		ServerURL:     s.ServerURL(),
		DefaultServer: defaultServer,
		Servers:       len(servers),
		MemoryEvents:  s.MemoryEvents(),
	}
}
