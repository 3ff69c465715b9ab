// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package orderedmap provides a generic associative container that
// iterates in insertion order.
package orderedmap

import "iter"

// A Map is a key-value mapping that remembers the order in which keys
// were first inserted. The zero value is an empty map ready to use.
//
// Lookups are backed by a Go map, so Get, Contains, and Set run in
// expected constant time. Iteration walks a separate key sequence and
// is deterministic regardless of the runtime's map ordering.
//
// A Map is not safe for concurrent mutation and must not be mutated
// while an iteration over it is in progress.
type Map[K comparable, V any] struct {
	base map[K]V
	keys []K
}

// New returns an empty map. It is equivalent to new(Map[K, V]) and
// exists for call sites that want to spell out the type parameters.
func New[K comparable, V any]() *Map[K, V] {
	return new(Map[K, V])
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under k and reports whether the key
// was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.base[k]
	return v, ok
}

// Contains reports whether k is present in the map.
func (m *Map[K, V]) Contains(k K) bool {
	if m == nil {
		return false
	}
	_, ok := m.base[k]
	return ok
}

// Set stores v under k and returns the value the key previously held,
// if any. A new key is appended to the iteration order; setting an
// existing key replaces its value without moving it.
func (m *Map[K, V]) Set(k K, v V) (prev V, replaced bool) {
	if m.base == nil {
		m.base = make(map[K]V)
	}
	prev, replaced = m.base[k]
	if !replaced {
		m.keys = append(m.keys, k)
	}
	m.base[k] = v
	return prev, replaced
}

// Delete removes k from the map and returns the value it held. The
// relative order of the remaining keys is preserved.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.base[k]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.base, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Keys returns an iterator over the keys in insertion order. The
// sequence is restartable: ranging over it again starts from the
// beginning.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over key-value pairs in insertion order.
// Like Keys, the sequence is restartable.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.base[k]) {
				return
			}
		}
	}
}
