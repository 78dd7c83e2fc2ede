// Package registry keeps the set of known MCP servers keyed by URL.
package registry

import (
	"sort"
	"sync"

	"github.com/viant/mcpclient/schema"
)

// Registry represents servers keyed by URL plus the default server URL.
// A single mutex guards both; it is only held for in-memory reads and commits.
type Registry struct {
	mux           sync.Mutex
	servers       map[string]*schema.ServerRecord
	defaultServer string
}

// Register adds URL in initializing state. For a known URL it returns the current
// record with schema.StatusAlreadyRegistered and false. The first URL ever
// registered becomes the default server.
func (r *Registry) Register(URL string) (schema.ServerRecord, schema.Status, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if record, ok := r.servers[URL]; ok {
		return record.Clone(), schema.StatusAlreadyRegistered, false
	}
	record := schema.NewServerRecord(URL)
	r.servers[URL] = record
	if r.defaultServer == "" {
		r.defaultServer = URL
	}
	return record.Clone(), record.Status, true
}

// Get returns a copy of the record for URL
func (r *Registry) Get(URL string) (schema.ServerRecord, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	record, ok := r.servers[URL]
	if !ok {
		return schema.ServerRecord{}, false
	}
	return record.Clone(), true
}

// SessionID returns the session id held for URL
func (r *Registry) SessionID(URL string) string {
	r.mux.Lock()
	defer r.mux.Unlock()
	if record, ok := r.servers[URL]; ok {
		return record.SessionID
	}
	return ""
}

// List returns copies of all records sorted by URL
func (r *Registry) List() []schema.ServerRecord {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.list()
}

// Snapshot returns all records and the default URL observed under one lock
func (r *Registry) Snapshot() ([]schema.ServerRecord, string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.list(), r.defaultServer
}

func (r *Registry) list() []schema.ServerRecord {
	ret := make([]schema.ServerRecord, 0, len(r.servers))
	for _, record := range r.servers {
		ret = append(ret, record.Clone())
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].URL < ret[j].URL })
	return ret
}

// Default returns the default server URL, empty when nothing was registered
func (r *Registry) Default() string {
	r.mux.Lock()
	defer r.mux.Unlock()
	return r.defaultServer
}

// SetDefault sets the default server URL only if none is set; it returns the effective default.
func (r *Registry) SetDefault(URL string) string {
	r.mux.Lock()
	defer r.mux.Unlock()
	if r.defaultServer == "" {
		r.defaultServer = URL
	}
	return r.defaultServer
}

// Update applies fn to the record for URL atomically; false when URL is unknown
func (r *Registry) Update(URL string, fn func(record *schema.ServerRecord)) (schema.ServerRecord, bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	record, ok := r.servers[URL]
	if !ok {
		return schema.ServerRecord{}, false
	}
	fn(record)
	return record.Clone(), true
}

// Transition moves the record for URL from one status to another; false when
// URL is unknown or not in the from status
func (r *Registry) Transition(URL string, from, to schema.Status) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	record, ok := r.servers[URL]
	if !ok || record.Status != from {
		return false
	}
	record.Status = to
	return true
}

// Len returns number of registered servers
func (r *Registry) Len() int {
	r.mux.Lock()
	defer r.mux.Unlock()
	return len(r.servers)
}

// New creates a registry
func New() *Registry {
	return &Registry{servers: make(map[string]*schema.ServerRecord)}
}
