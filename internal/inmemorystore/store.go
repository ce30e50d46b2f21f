package inmemorystore

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store is an insertion-ordered map from a comparable key to a node result.
type Store[K comparable, V any] struct {
	entries *orderedmap.OrderedMap[K, V]
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{entries: orderedmap.New[K, V]()}
}

// Get returns the result recorded under key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	return s.entries.Get(key)
}

// Set records value under key. It reports whether the key already held a
// value; the key keeps its original position in that case.
func (s *Store[K, V]) Set(key K, value V) bool {
	_, present := s.entries.Set(key, value)
	return present
}

// GetOrCompute returns the value under key, calling compute only when the
// key is absent. hit is true when the value came from the store.
func (s *Store[K, V]) GetOrCompute(key K, compute func() (V, error)) (value V, hit bool, err error) {
	if v, ok := s.entries.Get(key); ok {
		return v, true, nil
	}
	v, err := compute()
	if err != nil {
		return value, false, err
	}
	s.entries.Set(key, v)
	return v, false, nil
}

// Len is the number of recorded results.
func (s *Store[K, V]) Len() int {
	return s.entries.Len()
}

// Values returns all results in insertion order.
func (s *Store[K, V]) Values() []V {
	out := make([]V, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}
