/*
Package bopomofo converts Chinese text to bopomofo (zhuyin).

Text is first cut into words by a segmenter. Words containing Han characters
are converted to bopomofo syllables, one per character, by a
PhoneticConverter; all other words (Latin text, digits, punctuation, white
space) are copied verbatim. Every syllable carries a tone mark: syllables
without one, i.e. those in the first or in the neutral tone, receive "ˉ".

    "abc你好"  →  "abc ㄋㄧˇㄏㄠˇ"

Converted words are separated from preceding output by a single space.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bopomofo

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/cleaners/ruletable"
	"github.com/npillmayer/cleaners/segment"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Stage names used in errors.
const (
	StageSegmenter = "segmenter"
	StageConverter = "phonetic converter"
)

// FirstTone is the tone mark appended to syllables without one.
const FirstTone = 'ˉ'

// Mapper converts Han words to bopomofo. A Mapper holds no state between
// calls; it is safe for concurrent use if its collaborators are.
type Mapper struct {
	seg  segment.Segmenter
	conv PhoneticConverter
}

// NewMapper creates a Mapper. If seg is nil, the default segment.Dictionary
// is used; if it cannot be loaded, segmentation falls back to
// segment.UAX29. If conv is nil, a PinyinConverter is used, with phrase
// lookup if words are cut by a dictionary.
func NewMapper(seg segment.Segmenter, conv PhoneticConverter) *Mapper {
	if seg == nil {
		if d, err := segment.Default(); err != nil {
			tracer().Errorf("no segmenter dictionary, using UAX#29 word breaking: %v", err)
			seg = segment.UAX29{}
		} else {
			seg = d
		}
	}
	if conv == nil {
		if d, ok := seg.(*segment.Dictionary); ok {
			conv = NewPhraseConverter(d)
		} else {
			conv = NewPinyinConverter()
		}
	}
	return &Mapper{seg: seg, conv: conv}
}

// Map converts the Han words of text to bopomofo.
func (m *Mapper) Map(text string) (string, error) {
	text = ruletable.ClauseSeparators.Apply(text)
	words, err := m.seg.Segment(text)
	if err != nil {
		return "", cleaners.Failed(StageSegmenter, err)
	}
	var b strings.Builder
	for _, word := range words {
		if !ContainsHan(word) {
			b.WriteString(word)
			continue
		}
		units, err := m.conv.Convert(word)
		if err != nil {
			return "", cleaners.Failed(StageConverter, err)
		}
		if len(units) == 0 {
			return "", cleaners.Failed(StageConverter, nil)
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		for _, u := range units {
			b.WriteString(u)
			if r, _ := utf8.DecodeLastRuneInString(u); IsSymbol(r) {
				b.WriteRune(FirstTone)
			}
		}
	}
	tracer().Debugf("bopomofo: %q → %q", text, b.String())
	return b.String(), nil
}

// Stage returns m as a cleaners.Stage.
func (m *Mapper) Stage() cleaners.Stage {
	return m.Map
}

// ContainsHan is true if s contains a character of the CJK unified
// ideographs block.
func ContainsHan(s string) bool {
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}

// IsSymbol is true for the bopomofo letters ㄅ … ㄩ.
func IsSymbol(r rune) bool {
	return r >= 'ㄅ' && r <= 'ㄩ'
}

// IsToneMark is true for the five bopomofo tone marks.
func IsToneMark(r rune) bool {
	switch r {
	case 'ˉ', 'ˊ', 'ˇ', 'ˋ', '˙':
		return true
	}
	return false
}
