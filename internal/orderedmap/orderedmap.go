// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package orderedmap provides a map that iterates in insertion order.
package orderedmap

import "iter"

// Map is a map from K to V that remembers the order in which keys were first
// inserted. Overwriting an existing key keeps its original position.
//
// The zero value is not usable; use New.
type Map[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New returns an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Get returns the value bound to key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Put binds key to value and returns the previous binding, if any.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if i, ok := m.index[key]; ok {
		prev = m.entries[i].value
		m.entries[i].value = value
		return prev, true
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[K, V]{key: key, value: value})
	return prev, false
}

// At returns the i-th key and value in insertion order.
func (m *Map[K, V]) At(i int) (K, V) {
	e := &m.entries[i]
	return e.key, e.value
}

// All returns an iterator over the map in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].key, m.entries[i].value) {
				return
			}
		}
	}
}
