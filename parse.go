// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	lineSection
	lineKeyValue
)

// parsedLine is the classification of a single input line. It is
// consumed immediately by Parse and never stored.
type parsedLine struct {
	kind    lineKind
	section string
	key     string
	value   string
}

// parseLine classifies one line of input. lineno is 1-based and is
// used only for error reporting.
func parseLine(line string, lineno int) (parsedLine, error) {
	// A semicolon starts a comment. There is no quoting or escape
	// mechanism, so everything from the first semicolon on is
	// discarded before any other rule applies.
	content, _, _ := strings.Cut(line, ";")
	content = strings.TrimSpace(content)
	if content == "" {
		return parsedLine{kind: lineBlank}, nil
	}
	if strings.HasPrefix(content, "[") {
		if !strings.HasSuffix(content, "]") {
			return parsedLine{}, &ParseError{Line: lineno, Err: ErrSection}
		}
		// Bracket runs collapse: "[[name]]" names the section "name".
		// Whitespace inside the brackets is part of the name.
		name := strings.Trim(content, "[]")
		return parsedLine{kind: lineSection, section: name}, nil
	}
	if key, value, ok := strings.Cut(content, "="); ok {
		key = strings.TrimSpace(key)
		if key == "" {
			return parsedLine{}, &ParseError{Line: lineno, Err: ErrEmptyKey}
		}
		// An empty value is legal: "a =" stores the empty string.
		return parsedLine{kind: lineKeyValue, key: key, value: strings.TrimSpace(value)}, nil
	}
	return parsedLine{}, &ParseError{Line: lineno, Err: ErrSyntax}
}
