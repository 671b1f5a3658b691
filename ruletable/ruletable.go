/*
Package ruletable implements ordered substitution tables.

A rule table is an ordered list of (pattern, replacement) pairs.
Applying a table to a string iterates the entries strictly in table order,
each entry performing a global find-and-replace over the current,
already partially transformed string. There is no backtracking across
entries: once an entry has been applied, its output is frozen as input
for the next entry.

Order is load-bearing. More specific multi-character patterns have to
precede their single-character prefixes, otherwise a later entry will never
see the cluster it is supposed to map:

    ㄅㄛ → p⁼wo     must come before
    ㄅ   → p⁼

Tables are immutable after construction and therefore safe for concurrent
use.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ruletable

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Replacer computes the replacement for a match. groups[0] is the complete
// match, groups[1…] are the sub-matches of the pattern.
type Replacer func(groups []string) string

// Entry is a single rule of a table.
type Entry struct {
	Pattern  *regexp.Regexp
	literal  string   // literal replacement, no expansion of $-references
	template string   // replacement with $-references to sub-matches
	replacer Replacer // computed replacement
	kind     entryKind
}

type entryKind int8

const (
	literalEntry entryKind = iota
	templateEntry
	funcEntry
)

// Literal creates an entry replacing every match of pattern with repl, taken
// literally.
func Literal(pattern string, repl string) Entry {
	return Entry{Pattern: regexp.MustCompile(pattern), literal: repl, kind: literalEntry}
}

// Text creates an entry replacing occurences of the literal string s with repl.
func Text(s string, repl string) Entry {
	return Literal(regexp.QuoteMeta(s), repl)
}

// Fold creates an entry replacing the literal string s, regardless of
// (Unicode simple) case, with repl.
func Fold(s string, repl string) Entry {
	return Literal("(?i)"+regexp.QuoteMeta(s), repl)
}

// Template creates an entry replacing every match of pattern with tmpl,
// where $1, ${name} etc. are expanded as with regexp.Expand.
func Template(pattern string, tmpl string) Entry {
	return Entry{Pattern: regexp.MustCompile(pattern), template: tmpl, kind: templateEntry}
}

// Func creates an entry replacing every match of pattern with the
// result of r.
func Func(pattern string, r Replacer) Entry {
	return Entry{Pattern: regexp.MustCompile(pattern), replacer: r, kind: funcEntry}
}

// Apply performs a global substitution of every non-overlapping match of the
// entry's pattern.
func (e Entry) Apply(s string) string {
	switch e.kind {
	case literalEntry:
		return e.Pattern.ReplaceAllLiteralString(s, e.literal)
	case templateEntry:
		return e.Pattern.ReplaceAllString(s, e.template)
	}
	return replaceAllFunc(e.Pattern, s, e.replacer)
}

func (e Entry) String() string {
	switch e.kind {
	case literalEntry:
		return fmt.Sprintf("%s → %q", e.Pattern, e.literal)
	case templateEntry:
		return fmt.Sprintf("%s → %s", e.Pattern, e.template)
	}
	return fmt.Sprintf("%s → func", e.Pattern)
}

func replaceAllFunc(re *regexp.Regexp, s string, r Replacer) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}
	out := make([]byte, 0, len(s))
	last := 0
	groups := make([]string, re.NumSubexp()+1)
	for _, loc := range locs {
		for i := range groups {
			if loc[2*i] < 0 {
				groups[i] = ""
			} else {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		out = append(out, s[last:loc[0]]...)
		out = append(out, r(groups)...)
		last = loc[1]
	}
	return string(append(out, s[last:]...))
}

// === Tables ================================================================

// Table is an ordered sequence of entries. Tables are immutable.
type Table struct {
	name    string
	entries []Entry
}

// New creates a rule table. The entries are copied; the order of
// entries is the order of application.
func New(name string, entries ...Entry) *Table {
	t := &Table{name: name, entries: make([]Entry, len(entries))}
	copy(t.entries, entries)
	return t
}

// Name returns the name of the table, as given at construction time.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns the i-th entry.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Apply applies all entries of t to s, in table order. Absence of a match
// leaves the string unchanged for that entry.
func (t *Table) Apply(s string) string {
	in := s
	for _, e := range t.entries {
		s = e.Apply(s)
	}
	tracer().P("table", t.name).Debugf("%q → %q", in, s)
	return s
}

// Then creates a new table applying the entries of t, followed by the
// entries of u.
func (t *Table) Then(name string, u *Table) *Table {
	entries := make([]Entry, 0, len(t.entries)+len(u.entries))
	entries = append(entries, t.entries...)
	entries = append(entries, u.entries...)
	return &Table{name: name, entries: entries}
}
