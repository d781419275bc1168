// Package ordered provides insertion-ordered data structures.
package ordered

import "iter"

type pair[K comparable, V any] struct {
	key   K
	value V
}

// Map is an insertion-ordered map. Iter ranges over the pairs in the
// order in which their keys were first stored.
type Map[K comparable, V any] struct {
	index map[K]int
	pairs []pair[K, V]
}

// NewMap returns a new empty ordered map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Store a key,value pair. Storing an existing key overwrites its value
// but keeps its original position.
func (m *Map[K, V]) Store(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.pairs[i].value = v
		return
	}
	m.index[k] = len(m.pairs)
	m.pairs = append(m.pairs, pair[K, V]{key: k, value: v})
}

// Load returns the value stored for a key.
func (m *Map[K, V]) Load(k K) (V, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.pairs[i].value, true
}

// Has returns true if a value has been stored for the key.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

// Iter returns an iterator ranging over the pairs in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys returns an iterator ranging over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range m.pairs {
			if !yield(p.key) {
				return
			}
		}
	}
}

// Values returns an iterator ranging over the values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range m.pairs {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Size returns the number of pairs stored in the map.
func (m *Map[K, V]) Size() int {
	return len(m.pairs)
}
