// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
)

// Parse errors fall into one of these kinds. They are wrapped in a
// *ParseError and can be tested for with errors.Is.
var (
	// ErrSection indicates a line that opens a section header without
	// closing the bracket.
	ErrSection = errors.New("section missing closing bracket")

	// ErrSyntax indicates a non-blank line that is neither a section
	// header nor an assignment.
	ErrSyntax = errors.New("not a section, assignment, or comment")

	// ErrEmptyKey indicates an assignment whose key is empty after
	// trimming whitespace.
	ErrEmptyKey = errors.New("assignment has empty key")
)

// A ParseError describes a malformed line in an INI document and its
// position in the input.
type ParseError struct {
	// Line is the 1-based line number of the malformed line.
	Line int
	// Err is one of ErrSection, ErrSyntax, or ErrEmptyKey.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse ini: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
