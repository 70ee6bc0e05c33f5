package content

import (
	"sort"
	"sync/atomic"
)

// Store is a read-mostly registry of definitions keyed by ID. Replace swaps
// the whole map atomically, so lookups racing a reload see either the old
// set or the new one, never a mix.
type Store[T any] struct {
	key  func(T) string
	defs atomic.Pointer[map[string]T]
}

// NewStore creates a store keyed by the given function, seeded with defs.
func NewStore[T any](key func(T) string, defs ...T) *Store[T] {
	s := &Store[T]{key: key}
	s.Replace(defs)
	return s
}

// Replace swaps the full definition set.
func (s *Store[T]) Replace(defs []T) {
	m := make(map[string]T, len(defs))
	for _, d := range defs {
		m[s.key(d)] = d
	}
	s.defs.Store(&m)
}

// Get returns the definition with the given ID.
func (s *Store[T]) Get(id string) (T, bool) {
	d, ok := (*s.defs.Load())[id]
	return d, ok
}

// All returns every definition, sorted by ID.
func (s *Store[T]) All() []T {
	m := *s.defs.Load()
	out := make([]T, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return s.key(out[i]) < s.key(out[j]) })
	return out
}

// Len returns the number of definitions.
func (s *Store[T]) Len() int {
	return len(*s.defs.Load())
}
