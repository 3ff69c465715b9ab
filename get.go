// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"strconv"
	"strings"
	"time"
)

// Typed getters convert a section's textual values on demand. A
// missing key and an unparseable value both report false; conversion
// failure is representable absence, never an error.

// Int returns the value stored under key parsed as a decimal integer.
func (s *Section) Int(key string) (int, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float returns the value stored under key parsed as a float64.
func (s *Section) Float(key string) (float64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool returns the value stored under key parsed with
// strconv.ParseBool, so 1, t, T, TRUE, true, True, 0, f, F, FALSE,
// false, and False are accepted.
func (s *Section) Bool(key string) (bool, bool) {
	v, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// Duration returns the value stored under key parsed with
// time.ParseDuration.
func (s *Section) Duration(key string) (time.Duration, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

// List returns the value stored under key split on sep, with each
// element trimmed of surrounding whitespace.
func (s *Section) List(key, sep string) ([]string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	parts := strings.Split(v, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, true
}

// Strings returns the value stored under key split on commas. It is
// shorthand for List(key, ",").
func (s *Section) Strings(key string) ([]string, bool) {
	return s.List(key, ",")
}

// Ints returns the value stored under key parsed as a comma-separated
// list of integers. If any element fails to parse, Ints reports false.
func (s *Section) Ints(key string) ([]int, bool) {
	parts, ok := s.Strings(key)
	if !ok {
		return nil, false
	}
	ns := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		ns[i] = n
	}
	return ns, true
}

// Floats returns the value stored under key parsed as a
// comma-separated list of float64s. If any element fails to parse,
// Floats reports false.
func (s *Section) Floats(key string) ([]float64, bool) {
	parts, ok := s.Strings(key)
	if !ok {
		return nil, false
	}
	fs := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, false
		}
		fs[i] = f
	}
	return fs, true
}
