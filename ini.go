// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/yourbase/ini/orderedmap"
)

// A Document is an ordered collection of sections. The zero value is an
// empty document. Sections iterate in the order they were first
// created, and the keys inside each section iterate in the order they
// were first set.
//
// Read methods are safe to call on a nil *Document. A Document is not
// safe for concurrent mutation; callers needing concurrent access must
// serialize it externally.
type Document struct {
	sections orderedmap.Map[string, *Section]
}

// Parse reads an INI document from r. Line numbers are 1-based.
// Parsing is fail-fast: the first malformed line aborts the parse, the
// returned document is nil, and the error is a *ParseError.
//
// Key-value lines that appear before any section header belong to the
// global section, named "". A section header alone does not create a
// section; the section materializes when its first key is set, so a
// header with no keys under it never reappears in serialized output.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (*Document, error) {
	d := new(Document)
	currentSection := ""
	s := bufio.NewScanner(r)
	lineno := 1
	for ; s.Scan(); lineno++ {
		parsed, err := parseLine(s.Text(), lineno)
		if err != nil {
			return nil, err
		}
		switch parsed.kind {
		case lineSection:
			currentSection = parsed.section
		case lineKeyValue:
			d.Set(currentSection, parsed.key, parsed.value)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse ini: line %d: %w", lineno, err)
	}
	return d, nil
}

// ParseString parses an INI document from a string.
func ParseString(text string) (*Document, error) {
	return Parse(strings.NewReader(text))
}

// ParseFile parses the INI file at the given path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	parsed, err := Parse(f)
	f.Close() // Close errors irrelevant.
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %s: %w", path, err)
	}
	return parsed, nil
}

// Section returns the named section, or nil if the document has no
// section with that name. A nil *Section behaves as a permanently
// empty section, so looking up keys in or iterating over an absent
// section is safe.
func (d *Document) Section(name string) *Section {
	if d == nil {
		return nil
	}
	s, _ := d.sections.Get(name)
	return s
}

// HasSection reports whether the document contains a section with the
// given name.
func (d *Document) HasSection(name string) bool {
	if d == nil {
		return false
	}
	return d.sections.Contains(name)
}

// section returns the named section, creating it at the end of the
// document if necessary.
func (d *Document) section(name string) *Section {
	if s, ok := d.sections.Get(name); ok {
		return s
	}
	s := new(Section)
	d.sections.Set(name, s)
	return s
}

// Get returns the value stored under the given section and key.
// Passing an empty section name reads the global section. Missing
// sections and keys report false, never an error.
func (d *Document) Get(section, key string) (string, bool) {
	return d.Section(section).Get(key)
}

// Set stores value under the given section and key, creating the
// section if it does not exist yet. Passing an empty section name
// writes to the global section. Setting an existing key overwrites its
// value without changing its position in the section.
//
// Set panics if IsValidSection(section), IsValidKey(key), or
// IsValidValue(value) report false: such strings cannot survive
// serialization, so storing them would silently corrupt the document
// on reparse. Parse never produces invalid names or values.
func (d *Document) Set(section, key, value string) {
	if !IsValidSection(section) {
		panic("Document.Set invalid section: " + section)
	}
	d.section(section).Set(key, value)
}

// Delete removes key from the named section and reports whether it was
// present. The section itself is kept even if it becomes empty.
func (d *Document) Delete(section, key string) bool {
	return d.Section(section).Delete(key)
}

// RemoveSection removes an entire section and reports whether it was
// present.
func (d *Document) RemoveSection(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.sections.Delete(name)
	return ok
}

// Len returns the number of sections in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return d.sections.Len()
}

// Sections returns an iterator over section names in creation order.
func (d *Document) Sections() iter.Seq[string] {
	return func(yield func(string) bool) {
		if d == nil {
			return
		}
		for name := range d.sections.Keys() {
			if !yield(name) {
				return
			}
		}
	}
}

// All returns an iterator over (name, section) pairs in creation order.
func (d *Document) All() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		if d == nil {
			return
		}
		for name, s := range d.sections.All() {
			if !yield(name, s) {
				return
			}
		}
	}
}

// MarshalText serializes the document in canonical form: each section
// as a "[name]" header followed by one "key = value" line per key,
// with a single blank line between sections and no trailing newline.
// Comments from parsed input are never emitted; Parse discards them.
//
// The global section, if present, is always written first and without
// a header, regardless of when it was created. Bare assignments
// anywhere else in the output would be claimed by the preceding
// section header on reparse.
//
// MarshalText implements encoding.TextMarshaler. The returned error is
// always nil.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var blocks []string
	appendBlock := func(name string, s *Section) {
		var lines []string
		if name != "" {
			lines = append(lines, "["+name+"]")
		}
		for k, v := range s.All() {
			lines = append(lines, k+" = "+v)
		}
		if len(lines) == 0 {
			return
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if global, ok := d.sections.Get(""); ok {
		appendBlock("", global)
	}
	for name, s := range d.sections.All() {
		if name == "" {
			continue
		}
		appendBlock(name, s)
	}
	return []byte(strings.Join(blocks, "\n\n")), nil
}

// UnmarshalText parses the INI data, replacing the document's
// contents. It implements encoding.TextUnmarshaler.
func (d *Document) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// String returns the canonical serialization of the document.
func (d *Document) String() string {
	text, _ := d.MarshalText()
	return string(text)
}

// WriteTo writes the canonical serialization to w. It implements
// io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	text, _ := d.MarshalText()
	n, err := w.Write(text)
	return int64(n), err
}

// WriteFile writes the canonical serialization to the file at the
// given path, creating it if necessary and truncating it otherwise.
func (d *Document) WriteFile(path string) error {
	text, _ := d.MarshalText()
	if err := os.WriteFile(path, text, 0666); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}

// IsValidSection reports whether a string can be used as a section
// name. The global section "" is always valid. A name is invalid when
// the format cannot reproduce it: a semicolon would start a comment, a
// newline would end the line, and leading or trailing bracket
// characters would be trimmed away on reparse. Bracket characters in
// the interior of the name are fine.
func IsValidSection(name string) bool {
	if name == "" {
		return true
	}
	if strings.ContainsAny(name, ";\n") {
		return false
	}
	first, last := name[0], name[len(name)-1]
	return first != '[' && first != ']' && last != '[' && last != ']'
}

// IsValidKey reports whether a string can be used as a property key.
// A key must be non-empty and carry no surrounding whitespace (the
// parser trims it, changing the key's identity), must not contain an
// equals sign, semicolon, or newline, and must not begin with an open
// bracket, which would make the line read as a section header.
func IsValidKey(key string) bool {
	if key == "" || strings.TrimSpace(key) != key {
		return false
	}
	if strings.ContainsAny(key, "=;\n") {
		return false
	}
	return key[0] != '['
}

// IsValidValue reports whether a string survives serialization as a
// value. A value may be empty and may contain equals signs, but must
// carry no surrounding whitespace (the parser trims it) and no
// semicolon or newline.
func IsValidValue(value string) bool {
	if strings.TrimSpace(value) != value {
		return false
	}
	return !strings.ContainsAny(value, ";\n")
}
