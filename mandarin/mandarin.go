/*
Package mandarin implements the cleaners for Mandarin Chinese.

Two pipelines are provided, sharing their first three stages:

    Clean:     numerals → bopomofo → spelled-out Latin → sentence end
    Romanize:  numerals → bopomofo → spelled-out Latin → romaji → corrections

Clean is the "chinese_cleaners" cleaner and produces bopomofo. It never
returns text ending on a bare tone mark; a full-width period is appended
in that case.

Romanize produces the IPA-like romanization used for Chinese spans of
mixed-language utterances. It does not terminate the sentence; that is the
job of the dispatcher assembling the utterance.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mandarin

import (
	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/cleaners/bopomofo"
	"github.com/npillmayer/cleaners/numerals"
	"github.com/npillmayer/cleaners/ruletable"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Cleaner names.
const (
	CleanerName   = "chinese_cleaners"
	RomanizerName = "chinese_romanization"
)

// FullStop terminates sentences ending on a tone mark.
const FullStop = "。"

// Pipeline holds the stages of the Mandarin cleaners.
// A Pipeline is immutable and safe for concurrent use if its
// collaborators are.
type Pipeline struct {
	toBopomofo cleaners.Stage
	toRomaji   cleaners.Stage
}

// New creates a Pipeline from a number normalizer and a bopomofo mapper.
// Nil arguments are replaced by their package defaults.
func New(n *numerals.Normalizer, m *bopomofo.Mapper) *Pipeline {
	if n == nil {
		n = numerals.New(nil)
	}
	if m == nil {
		m = bopomofo.NewMapper(nil, nil)
	}
	p := &Pipeline{}
	p.toBopomofo = cleaners.Compose(
		n.Stage(),
		m.Stage(),
		cleaners.Lift(ruletable.LatinToBopomofo.Apply),
	)
	p.toRomaji = cleaners.Compose(
		p.toBopomofo,
		cleaners.Lift(ruletable.BopomofoToRomaji.Apply),
		cleaners.Lift(ruletable.RomajiCorrections.Apply),
	)
	return p
}

// Bopomofo converts text to bopomofo, spelling out numerals and Latin
// letters, without terminating the sentence.
func (p *Pipeline) Bopomofo(text string) (string, error) {
	return p.toBopomofo(text)
}

// Clean is the "chinese_cleaners" cleaner.
func (p *Pipeline) Clean(text string) (string, error) {
	if err := cleaners.RequireText(CleanerName, text); err != nil {
		return "", err
	}
	out, err := p.toBopomofo(text)
	if err != nil {
		return "", err
	}
	last, err := cleaners.LastRune(CleanerName, out)
	if err != nil {
		return "", err
	}
	if bopomofo.IsToneMark(last) {
		out += FullStop
	}
	tracer().Debugf("%s: %q → %q", CleanerName, text, out)
	return out, nil
}

// Romanize converts text to romaji, including the glide and sibilant vowel
// corrections.
func (p *Pipeline) Romanize(text string) (string, error) {
	if err := cleaners.RequireText(RomanizerName, text); err != nil {
		return "", err
	}
	out, err := p.toRomaji(text)
	if err != nil {
		return "", err
	}
	tracer().Debugf("%s: %q → %q", RomanizerName, text, out)
	return out, nil
}
