package collection

import "sync/atomic"

// Snapshot is an immutable view of a Cell value
type Snapshot[T any] struct {
	Value   T
	Version uint64
}

// Cell holds a value that can be swapped while concurrent readers keep using
// the snapshot they loaded. A replaced snapshot is never mutated or released
// explicitly; it stays valid for as long as a reader references it.
type Cell[T any] struct {
	ptr atomic.Pointer[Snapshot[T]]
}

// Load returns the current snapshot, zero snapshot when nothing was stored
func (c *Cell[T]) Load() Snapshot[T] {
	if s := c.ptr.Load(); s != nil {
		return *s
	}
	return Snapshot[T]{}
}

// Get returns current value
func (c *Cell[T]) Get() T {
	return c.Load().Value
}

// Swap stores value and returns the previous snapshot
func (c *Cell[T]) Swap(value T) Snapshot[T] {
	for {
		prev := c.ptr.Load()
		next := &Snapshot[T]{Value: value, Version: 1}
		if prev != nil {
			next.Version = prev.Version + 1
		}
		if c.ptr.CompareAndSwap(prev, next) {
			if prev == nil {
				return Snapshot[T]{}
			}
			return *prev
		}
	}
}

// NewCell creates a cell holding initial value
func NewCell[T any](value T) *Cell[T] {
	ret := &Cell[T]{}
	ret.ptr.Store(&Snapshot[T]{Value: value})
	return ret
}
