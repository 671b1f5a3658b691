/*
Package japanese implements the cleaner for Japanese text.

Japanese text is handed to a Romanizer. The romaji returned is adapted to
the symbol set shared with the Mandarin cleaners:

    ts   →  ʦ
    u    →  ɯ
    ...  →  …

The "japanese_cleaners" cleaner guarantees a sentence-final punctuation
mark: output ends in one of

    .  ,  !  ?  -  …  ~

with a period appended if necessary. Output never ends in white space.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package japanese

import (
	"strings"
	"unicode"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/cleaners/ruletable"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// CleanerName is the registry name of the Japanese cleaner.
const CleanerName = "japanese_cleaners"

// StageRomanizer identifies the romanizer in errors.
const StageRomanizer = "japanese romanizer"

// Substitutions adapt romaji to the symbol set of the cleaners.
var Substitutions = ruletable.New("japanese substitutions",
	ruletable.Text("ts", "ʦ"),
	ruletable.Text("u", "ɯ"),
	ruletable.Text("...", "…"),
)

const terminals = ".,!?-…~"

// Pipeline is the Japanese cleaner. It is safe for concurrent use if its
// romanizer is.
type Pipeline struct {
	rom Romanizer
}

// New creates a Pipeline using romanizer rom, which must not be nil.
func New(rom Romanizer) *Pipeline {
	if rom == nil {
		panic("japanese: romanizer must not be nil")
	}
	return &Pipeline{rom: rom}
}

// Romanize romanizes Japanese text and applies the Substitutions.
// It is used for Japanese spans of mixed-language utterances.
func (p *Pipeline) Romanize(text string) (string, error) {
	romaji, err := p.rom.Romanize(text)
	if err != nil {
		return "", cleaners.Failed(StageRomanizer, err)
	}
	if romaji == "" && strings.TrimSpace(text) != "" {
		return "", cleaners.Failed(StageRomanizer, nil)
	}
	return Substitutions.Apply(romaji), nil
}

// Clean is the "japanese_cleaners" cleaner.
func (p *Pipeline) Clean(text string) (string, error) {
	if err := cleaners.RequireText(CleanerName, text); err != nil {
		return "", err
	}
	out, err := p.Romanize(text)
	if err != nil {
		return "", err
	}
	out = strings.TrimRightFunc(out, unicode.IsSpace)
	last, err := cleaners.LastRune(CleanerName, out)
	if err != nil {
		return "", err
	}
	if !strings.ContainsRune(terminals, last) {
		out += "."
	}
	tracer().Debugf("%s: %q → %q", CleanerName, text, out)
	return out, nil
}
