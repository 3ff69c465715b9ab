// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"strings"
)

// A Builder constructs a Document through method chaining. The builder
// carries the currently selected section name, so construction state
// lives on the builder rather than on the document.
//
//	doc := ini.NewBuilder().
//		Section("server").
//		Item("host", "example.com").
//		Item("port", 8080).
//		Document()
type Builder struct {
	doc     *Document
	current string
}

// NewBuilder returns a builder for an empty document. Items added
// before any Section call land in the global section "".
func NewBuilder() *Builder {
	return &Builder{doc: new(Document)}
}

// Section selects the section that subsequent items are added to.
// Selecting a section does not create it; the first item does, so a
// selected-but-never-filled section does not appear in output.
func (b *Builder) Section(name string) *Builder {
	b.current = name
	return b
}

// Item adds a key-value pair to the end of the selected section,
// creating the section if needed. The value is formatted with
// fmt.Sprint. Adding a key that already exists overwrites its value
// without changing its position.
//
// Like Document.Set, Item panics if the selected section name, the
// key, or the formatted value cannot survive serialization.
func (b *Builder) Item(key string, value any) *Builder {
	b.doc.Set(b.current, key, fmt.Sprint(value))
	return b
}

// ItemList adds the values as a single item joined by ", ".
func (b *Builder) ItemList(key string, values ...any) *Builder {
	return b.ItemListSep(key, ", ", values...)
}

// ItemListSep adds the values as a single item joined by sep. Each
// value is formatted with fmt.Sprint.
func (b *Builder) ItemListSep(key, sep string, values ...any) *Builder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	b.doc.Set(b.current, key, strings.Join(parts, sep))
	return b
}

// Erase removes a key from the selected section.
func (b *Builder) Erase(key string) *Builder {
	b.doc.Delete(b.current, key)
	return b
}

// Clear removes the selected section and everything in it.
func (b *Builder) Clear() *Builder {
	b.doc.RemoveSection(b.current)
	return b
}

// Document returns the document under construction. The same document
// is returned on every call; the builder may keep modifying it.
func (b *Builder) Document() *Document {
	return b.doc
}
