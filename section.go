// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"iter"

	"github.com/yourbase/ini/orderedmap"
)

// A Section is a named, ordered collection of key-value pairs. Values
// are always stored in textual form; see the typed getters for
// conversion. The zero value is an empty section.
//
// Read methods are safe to call on a nil *Section and behave as if the
// section were empty. Document.Section returns nil for absent names,
// so lookups against sections that do not exist yield zero items
// rather than an error.
type Section struct {
	items orderedmap.Map[string, string]
}

// Get returns the value stored under key and reports whether the key
// was present.
func (s *Section) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.items.Get(key)
}

// Value returns the value stored under key, or the empty string if the
// key is absent.
func (s *Section) Value(key string) string {
	v, _ := s.Get(key)
	return v
}

// Contains reports whether the section has a value for key.
func (s *Section) Contains(key string) bool {
	if s == nil {
		return false
	}
	return s.items.Contains(key)
}

// Set stores value under key. A new key is appended to the section's
// order; an existing key keeps its position and only its value
// changes. Set panics if s is nil: mutate through a Document (or
// Builder), which creates sections on demand.
//
// Set panics if IsValidKey(key) or IsValidValue(value) report false:
// such strings cannot survive serialization.
func (s *Section) Set(key, value string) {
	if !IsValidKey(key) {
		panic("Section.Set invalid key: " + key)
	}
	if !IsValidValue(value) {
		panic("Section.Set invalid value: " + value)
	}
	s.items.Set(key, value)
}

// Delete removes key from the section and reports whether it was
// present. The relative order of the remaining keys is preserved.
func (s *Section) Delete(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.items.Delete(key)
	return ok
}

// Len returns the number of keys in the section.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return s.items.Len()
}

// Keys returns an iterator over the section's keys in insertion order.
func (s *Section) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for k := range s.items.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over the section's key-value pairs in
// insertion order.
func (s *Section) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil {
			return
		}
		for k, v := range s.items.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}
