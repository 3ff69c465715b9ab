// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"os"
)

// A DocumentSet is a list of documents to obtain configuration from in
// descending order of precedence.
type DocumentSet []*Document

// ParseFiles parses the files at the given paths as INI and returns a
// DocumentSet. If the returned error is nil, the returned set's length
// will be the same as the number of arguments. ParseFiles stops on the
// first error, but ignores missing file errors, instead filling the
// corresponding element of the set with a nil *Document.
func ParseFiles(paths ...string) (DocumentSet, error) {
	set := make(DocumentSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			set = append(set, nil)
			continue
		}
		if err != nil {
			return set, fmt.Errorf("parse ini files: %w", err)
		}
		parsed, err := Parse(f)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return set, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		set = append(set, parsed)
	}
	return set, nil
}

// Get returns the value for the given section and key from the first
// document in the set that has it. Passing an empty section name reads
// the global section.
func (set DocumentSet) Get(section, key string) (string, bool) {
	for _, d := range set {
		if v, ok := d.Get(section, key); ok {
			return v, true
		}
	}
	return "", false
}

// Section returns a new section merging the named section from every
// document in the set. Higher-precedence documents override values
// from lower ones; a key's position follows the lowest-precedence
// document that defines it. The result is never nil.
func (set DocumentSet) Section(name string) *Section {
	merged := new(Section)
	for i := len(set) - 1; i >= 0; i-- {
		for k, v := range set[i].Section(name).All() {
			merged.Set(k, v)
		}
	}
	return merged
}

// Sections returns the names of sections present in any document of
// the set, in first-seen order across the set.
func (set DocumentSet) Sections() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, d := range set {
		for name := range d.Sections() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	return names
}

// HasSection reports whether any document in the set has a section
// with the given name.
func (set DocumentSet) HasSection(name string) bool {
	for _, d := range set {
		if d.HasSection(name) {
			return true
		}
	}
	return false
}

// Set stores the value in the set's first document and deletes the key
// from all subsequent documents, so the new value wins regardless of
// which document previously supplied it. Set panics if the set is
// empty. If set[0] is nil, Set allocates a new Document.
func (set DocumentSet) Set(section, key, value string) {
	if set[0] == nil {
		set[0] = new(Document)
	}
	set[0].Set(section, key, value)
	set[1:].Delete(section, key)
}

// Delete removes the key from the named section in every document of
// the set. Nil documents are ignored.
func (set DocumentSet) Delete(section, key string) {
	for _, d := range set {
		if d != nil {
			d.Delete(section, key)
		}
	}
}
