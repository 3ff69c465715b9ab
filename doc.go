// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini parses, represents, and serializes configuration documents
in the INI format. See https://en.wikipedia.org/wiki/INI_file.

The package is built around insertion-ordered maps: sections iterate in
the order they first appeared and keys iterate in the order they were
first set, while keyed lookup stays constant-time. Serialization is
therefore deterministic, and parsing the output of MarshalText yields
an equivalent document. Comments and the exact whitespace of the input
are not preserved.

# Syntax

An INI document is line-oriented text. A semicolon (';') starts a
comment that runs to the end of the line; there is no escape or quoting
mechanism, so a semicolon always starts a comment. Comments and
surrounding whitespace are stripped before a line is classified.

A line whose remaining text is empty is ignored. A line starting with a
square bracket ('[') is a section header and must end with a closing
bracket (']'); runs of brackets are trimmed from both ends, so
"[[name]]" and "[name]" both name the section "name". Any other line
must be an assignment: a key and a value separated by the first equals
sign ('='), each trimmed of surrounding whitespace:

	[section]
	key = value
	empty =          ; stores the empty string
	list = 1, 2, 3   ; split by the typed list getters on demand

A key that trims to nothing is an error; an empty value is not.
Assignments before the first section header belong to the global
section, identified by the empty string ("").

Any line that is none of the above is a syntax error. Parsing is
fail-fast: the first malformed line aborts the whole parse with a
*ParseError carrying the 1-based line number, and no partial document
is returned. Missing sections and keys during lookup, by contrast, are
never errors.

# Repeated names

Re-declaring a section continues the existing section in its original
position; re-assigning a key overwrites its value in place. A document
never contains duplicate section names or duplicate keys within a
section.
*/
package ini
