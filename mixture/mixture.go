/*
Package mixture implements the cleaner for mixed-language utterances.

Utterances are expected to consist of language-tagged spans:

    [ZH]你好[ZH][JA]こんにちは[JA]

Every span is cleaned by the stage routed to its language, and the markers
are removed. Cleaned spans are followed by a space; the final separator of
the utterance is dropped and a period is appended if the utterance would
otherwise end on a letter or a tone arrow.

Repeated spans

If an utterance contains the very same tagged span more than once, only the
first instance is cleaned by default; the others are copied verbatim,
markers included. This reproduces the behavior of the corpus tooling this
package has to stay compatible with and is a known limitation. Set
Dispatcher.ReplaceDuplicates to clean every instance.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mixture

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/cleaners/span"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// CleanerName is the registry name of the mixture cleaner.
const CleanerName = "zh_ja_mixture_cleaners"

// Route connects a language marker to the stage cleaning its spans.
type Route struct {
	Marker span.Marker
	Stage  cleaners.Stage
}

// Dispatcher routes language-tagged spans to their cleaners.
// A Dispatcher is immutable after configuration and is safe for concurrent
// use if its stages are.
type Dispatcher struct {
	scanner           *span.Scanner
	stages            map[language.Tag]cleaners.Stage
	ReplaceDuplicates bool // clean repeated identical spans, too
}

// New creates a Dispatcher for a set of routes.
func New(routes ...Route) *Dispatcher {
	d := &Dispatcher{stages: make(map[language.Tag]cleaners.Stage, len(routes))}
	markers := make([]span.Marker, len(routes))
	for i, r := range routes {
		if r.Stage == nil {
			panic(fmt.Sprintf("mixture: no stage for marker %s", r.Marker))
		}
		markers[i] = r.Marker
		d.stages[r.Marker.Tag] = r.Stage
	}
	d.scanner = span.NewScanner(markers...)
	return d
}

// NewZhJa creates a Dispatcher for [ZH] and [JA] spans.
func NewZhJa(zh, ja cleaners.Stage) *Dispatcher {
	return New(
		Route{Marker: span.Chinese, Stage: zh},
		Route{Marker: span.Japanese, Stage: ja},
	)
}

// Clean is the "zh_ja_mixture_cleaners" cleaner.
//
// Spans are located in a single scan and replaced at their positions.
// Text outside of spans is copied unchanged.
func (d *Dispatcher) Clean(text string) (string, error) {
	if err := cleaners.RequireText(CleanerName, text); err != nil {
		return "", err
	}
	spans, err := d.scanner.Scan(text)
	if err != nil {
		return "", err
	}
	if len(spans) == 0 {
		tracer().Infof("%s: utterance without language markers: %q", CleanerName, text)
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	seen := make(map[string]bool, len(spans))
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		last = s.End
		if seen[s.Tagged] && !d.ReplaceDuplicates {
			tracer().Debugf("span %v is a repetition, not cleaned", s)
			b.WriteString(s.Tagged)
			continue
		}
		seen[s.Tagged] = true
		cleaned, err := d.cleanSpan(s)
		if err != nil {
			return "", err
		}
		b.WriteString(cleaned)
		b.WriteByte(' ')
	}
	b.WriteString(text[last:])
	return finish(text, b.String())
}

func (d *Dispatcher) cleanSpan(s span.Span) (string, error) {
	if strings.TrimSpace(s.Payload) == "" {
		return "", nil
	}
	stage, ok := d.stages[s.Marker.Tag]
	if !ok { // cannot happen, scanner knows only routed markers
		return "", cleaners.Malformed(CleanerName, s.Tagged, "no cleaner for marker "+s.Marker.Literal)
	}
	return stage(s.Payload)
}

// finish drops the final character and terminates the sentence.
func finish(input, out string) (string, error) {
	if out == "" {
		return "", cleaners.Malformed(CleanerName, input, "no text left to finish")
	}
	out = cleaners.DropLastRune(out)
	r, err := cleaners.LastRune(CleanerName, out)
	if err != nil {
		return "", cleaners.Malformed(CleanerName, input, "no text left after cleaning")
	}
	if needsPeriod(r) {
		out += "."
	}
	tracer().Debugf("%s: %q → %q", CleanerName, input, out)
	return out, nil
}

func needsPeriod(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
	}
	return strings.ContainsRune("ɯɹəɥ→↓↑", r)
}
