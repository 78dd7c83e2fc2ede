package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcpclient/schema"
)

func TestRegistry_Register(t *testing.T) {
	reg := New()
	record, status, created := reg.Register("http://a")
	assert.True(t, created)
	assert.Equal(t, schema.StatusInitializing, status)
	assert.Equal(t, schema.StatusInitializing, record.Status)
	assert.Equal(t, "http://a", reg.Default())

	reg.Update("http://a", func(r *schema.ServerRecord) {
		r.Status = schema.StatusConnected
		r.Name = "srv"
	})
	record, status, created = reg.Register("http://a")
	assert.False(t, created)
	assert.Equal(t, schema.StatusAlreadyRegistered, status)
	assert.Equal(t, schema.StatusConnected, record.Status)
	assert.Equal(t, "srv", record.Name)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_DefaultIsFirstRegistered(t *testing.T) {
	reg := New()
	for _, URL := range []string{"http://first", "http://second", "http://third", "http://first"} {
		reg.Register(URL)
		assert.Equal(t, "http://first", reg.Default())
	}
	assert.Equal(t, "http://first", reg.SetDefault("http://other"))
	assert.Equal(t, "http://first", reg.Default())

	empty := New()
	assert.Equal(t, "", empty.Default())
	assert.Equal(t, "http://x", empty.SetDefault("http://x"))
}

func TestRegistry_ReadsAreCopies(t *testing.T) {
	reg := New()
	reg.Register("http://a")
	reg.Update("http://a", func(r *schema.ServerRecord) {
		r.Tools = []schema.ToolDescriptor{{Name: "echo", Parameters: []schema.ParameterDescriptor{{Name: "text"}}}}
	})
	record, ok := reg.Get("http://a")
	require.True(t, ok)
	record.Tools[0].Name = "mutated"
	record.Tools[0].Parameters[0].Name = "mutated"

	again, _ := reg.Get("http://a")
	assert.Equal(t, "echo", again.Tools[0].Name)
	assert.Equal(t, "text", again.Tools[0].Parameters[0].Name)

	_, ok = reg.Get("http://missing")
	assert.False(t, ok)
	_, ok = reg.Update("http://missing", func(r *schema.ServerRecord) {})
	assert.False(t, ok)
}

func TestRegistry_Transition(t *testing.T) {
	reg := New()
	reg.Register("http://a")
	assert.False(t, reg.Transition("http://a", schema.StatusFailed, schema.StatusInitializing))
	assert.True(t, reg.Transition("http://a", schema.StatusInitializing, schema.StatusFailed))
	assert.True(t, reg.Transition("http://a", schema.StatusFailed, schema.StatusInitializing))
	assert.False(t, reg.Transition("http://b", schema.StatusFailed, schema.StatusInitializing))
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := New()
	reg.Register("http://c")
	reg.Register("http://a")
	reg.Register("http://b")
	records, defaultServer := reg.Snapshot()
	require.Len(t, records, 3)
	assert.Equal(t, "http://a", records[0].URL)
	assert.Equal(t, "http://c", records[2].URL)
	assert.Equal(t, "http://c", defaultServer)
}

func TestRegistry_ConcurrentUpdatesAreAtomic(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		URL := fmt.Sprintf("http://server-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Register(URL)
			for j := 0; j < 100; j++ {
				name := fmt.Sprintf("name-%d", j)
				reg.Update(URL, func(r *schema.ServerRecord) {
					r.Name = name
					r.Version = name
					r.Status = schema.StatusConnected
				})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			for _, record := range reg.List() {
				assert.Equal(t, record.Name, record.Version)
				if record.Name != "" {
					assert.Equal(t, schema.StatusConnected, record.Status)
				}
			}
		}
	}()
	wg.Wait()
	assert.Equal(t, 2, reg.Len())
}
