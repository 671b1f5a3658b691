/*
Package span finds language-tagged spans in mixed-language utterances.

A span is a substring enclosed in a pair of identical markers:

    [ZH]你好[ZH][JA]こんにちは[JA]

contains a Chinese span with payload "你好" and a Japanese span with
payload "こんにちは". Spans do not nest, and a span of one language must be
closed before a span of another language may be opened. Violations are
reported as cleaners.MalformedInputError.

Markers are recognized by a set of literal recognizers fed rune by rune
through a cleaners.RunePublisher, so a single left-to-right pass over the
utterance finds every marker together with its byte position.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package span

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// StageName identifies the marker scanner in errors.
const StageName = "span scanner"

// Marker is a language marker, used in pairs to delimit a span.
type Marker struct {
	Literal string       // e.g., "[ZH]"
	Tag     language.Tag // language of spans delimited by this marker
}

func (m Marker) String() string {
	return m.Literal
}

// The markers understood by default.
var (
	Chinese  = Marker{Literal: "[ZH]", Tag: language.Chinese}
	Japanese = Marker{Literal: "[JA]", Tag: language.Japanese}
)

// Span is a language-tagged substring of an utterance.
// Start and End are byte positions of the span in the utterance, including
// the markers.
type Span struct {
	Marker  Marker
	Payload string // text between the markers
	Tagged  string // text including the markers
	Start   int
	End     int
}

func (s Span) String() string {
	return fmt.Sprintf("%s@%d:%d%q", s.Marker, s.Start, s.End, s.Payload)
}

// Scanner locates spans.
type Scanner struct {
	markers []Marker
	first   []rune
}

// NewScanner creates a Scanner for a set of markers.
// If no markers are given, Chinese and Japanese are used.
// Markers must be non-empty and distinct.
func NewScanner(markers ...Marker) *Scanner {
	if len(markers) == 0 {
		markers = []Marker{Chinese, Japanese}
	}
	sc := &Scanner{markers: markers, first: make([]rune, len(markers))}
	for i, m := range markers {
		if m.Literal == "" {
			panic("span: empty marker")
		}
		sc.first[i], _ = utf8.DecodeRuneInString(m.Literal)
	}
	return sc
}

var defaultScanner = NewScanner()

// Scan finds the spans of text with the default markers.
func Scan(text string) ([]Span, error) {
	return defaultScanner.Scan(text)
}

type occurrence struct {
	marker     int // index into markers
	start, end int
}

// Scan finds the spans of text, in order of appearance.
// Text outside of spans is not inspected.
func (sc *Scanner) Scan(text string) ([]Span, error) {
	found := sc.markerPositions(text)
	var spans []Span
	open := -1
	for i, occ := range found {
		if open < 0 {
			open = i
			continue
		}
		o := found[open]
		if occ.marker != o.marker {
			return nil, cleaners.Malformed(StageName, text,
				fmt.Sprintf("marker %s at %d inside span opened by %s at %d",
					sc.markers[occ.marker], occ.start, sc.markers[o.marker], o.start))
		}
		s := Span{
			Marker:  sc.markers[o.marker],
			Payload: text[o.end:occ.start],
			Tagged:  text[o.start:occ.end],
			Start:   o.start,
			End:     occ.end,
		}
		tracer().Debugf("found span %v", s)
		spans = append(spans, s)
		open = -1
	}
	if open >= 0 {
		o := found[open]
		return nil, cleaners.Malformed(StageName, text,
			fmt.Sprintf("marker %s at %d is never closed", sc.markers[o.marker], o.start))
	}
	return spans, nil
}

// markerPositions returns the byte positions of all markers in text.
// For every rune which may start a marker, a recognizer for this marker is
// subscribed to the publisher; recognizers accepting a rune report a match
// ending at this rune.
func (sc *Scanner) markerPositions(text string) []occurrence {
	pub := cleaners.NewRunePublisher()
	defer pub.Reset()
	var found []occurrence
	for end := 0; end < len(text); {
		r, size := utf8.DecodeRuneInString(text[end:])
		end += size
		for i, first := range sc.first {
			if r == first {
				pub.SubscribeMe(cleaners.NewPooledRecognizer(i, cleaners.LiteralRule(sc.markers[i].Literal)))
			}
		}
		_, accepted := pub.PublishRuneEvent(r)
		for _, m := range accepted {
			lit := sc.markers[m.Class].Literal
			found = append(found, occurrence{marker: m.Class, start: end - len(lit), end: end})
		}
	}
	return found
}
