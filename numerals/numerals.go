/*
Package numerals spells out numerals in text.

Numerals are runs of decimal digits, optionally containing a single
decimal point ("42", "3.14", "１２"). Each numeral found is handed to a
Converter, which produces the spoken form in the target script.

Repeated numerals

By default, every distinct numeral text is converted at its first
occurrence only; later occurrences of the very same numeral text are left
untouched:

    "5 apples, 5 oranges"  →  "五 apples, 5 oranges"

This reproduces the behavior of the corpus tooling this package has to stay
compatible with and is a known limitation, not a feature. Set
Normalizer.Repeats to convert every occurrence.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package numerals

import (
	"regexp"
	"strings"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// StageName identifies this stage in errors.
const StageName = "numerals"

// Converter converts a numeral literal to its spoken-word form.
type Converter interface {
	Convert(numeral string) (string, error)
}

// ConverterFunc is an adapter to use ordinary functions as Converters.
type ConverterFunc func(string) (string, error)

// Convert calls f(numeral).
func (f ConverterFunc) Convert(numeral string) (string, error) {
	return f(numeral)
}

// Unicode decimal digits with an optional single embedded decimal point.
var numeralPattern = regexp.MustCompile(`\p{Nd}+(?:\.?\p{Nd}+)?`)

// Normalizer replaces numerals by their spoken form.
// A Normalizer holds no state between calls.
type Normalizer struct {
	conv    Converter
	Repeats bool // convert repeated occurences of identical numerals, too
}

// New creates a Normalizer using converter conv. If conv is nil,
// a HanConverter is used.
func New(conv Converter) *Normalizer {
	if conv == nil {
		conv = HanConverter{}
	}
	return &Normalizer{conv: conv}
}

// Normalize spells out the numerals in text.
//
// Numerals are located in a single scan, left to right. Replacements
// are made at the positions found, never by searching for the numeral
// text again.
func (n *Normalizer) Normalize(text string) (string, error) {
	locs := numeralPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	seen := make(map[string]bool, len(locs))
	last := 0
	for _, loc := range locs {
		numeral := text[loc[0]:loc[1]]
		b.WriteString(text[last:loc[0]])
		last = loc[1]
		if seen[numeral] && !n.Repeats {
			tracer().Debugf("numeral %q at %d is a repetition, not converted", numeral, loc[0])
			b.WriteString(numeral)
			continue
		}
		seen[numeral] = true
		words, err := n.conv.Convert(numeral)
		if err != nil {
			return "", cleaners.Failed(StageName, err)
		}
		if words == "" {
			return "", cleaners.Failed(StageName, nil)
		}
		b.WriteString(words)
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// Stage returns n as a cleaners.Stage.
func (n *Normalizer) Stage() cleaners.Stage {
	return n.Normalize
}
