// Package variables holds the per-session variable stores.
package variables

import (
	"sort"
)

// Store maps variable names to values. It lives as long as the session and
// is never persisted.
type Store[V any] struct {
	values map[string]V
}

// NewStore creates an empty store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{values: make(map[string]V)}
}

// Get returns the value stored under key.
func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store[V]) Set(key string, value V) {
	s.values[key] = value
}

// Has reports whether key is defined.
func (s *Store[V]) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (s *Store[V]) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	return true
}

// Clear removes every variable and returns how many there were.
func (s *Store[V]) Clear() int {
	n := len(s.values)
	s.values = make(map[string]V)
	return n
}

// Len returns the number of variables.
func (s *Store[V]) Len() int {
	return len(s.values)
}

// Entry is a name/value pair returned by All.
type Entry[V any] struct {
	Name  string
	Value V
}

// All returns every variable sorted by name.
func (s *Store[V]) All() []Entry[V] {
	entries := make([]Entry[V], 0, len(s.values))
	for k, v := range s.values {
		entries = append(entries, Entry[V]{Name: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
