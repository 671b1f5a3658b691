/*
Package segment splits Chinese text into words.

Word segmentation is a prerequisite for converting Han characters to
syllables: a dictionary-aware phonetic front-end chooses the reading of a
polyphonic character by looking at the word it is part of.

Two segmenters are provided. Dictionary cuts text with a jieba-style
dictionary segmenter and is the default. UAX29 uses the Unicode word
breaking algorithm, which does not know about Chinese words and therefore
yields single Han characters; it needs no dictionary and is useful for
tests and for constrained environments.

Segmenters never drop or alter characters: concatenating the words of a
segmentation reproduces the input.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-ego/gse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	uaxseg "github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Segmenter splits text into words.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// SegmenterFunc is an adapter to use ordinary functions as Segmenters.
type SegmenterFunc func(string) ([]string, error)

// Segment calls f(text).
func (f SegmenterFunc) Segment(text string) ([]string, error) {
	return f(text)
}

// --- Dictionary segmenter --------------------------------------------------

// Dictionary is a dictionary based word segmenter.
// It is safe for concurrent use.
type Dictionary struct {
	seg gse.Segmenter
	HMM bool // use a hidden Markov model for words missing in the dictionary
}

// NewDictionary loads a segmenter dictionary. If no files are given,
// the built-in simplified Chinese dictionary is used.
//
// Loading a dictionary takes a noticeable amount of time; clients should
// create a Dictionary once and share it.
func NewDictionary(files ...string) (*Dictionary, error) {
	d := &Dictionary{HMM: true}
	if err := d.seg.LoadDict(files...); err != nil {
		return nil, fmt.Errorf("loading segmenter dictionary: %w", err)
	}
	tracer().Infof("segmenter dictionary loaded from %v", dictNames(files))
	return d, nil
}

func dictNames(files []string) string {
	if len(files) == 0 {
		return "built-in dictionary"
	}
	return strings.Join(files, ", ")
}

var (
	defaultDict     *Dictionary
	defaultDictErr  error
	defaultDictOnce sync.Once
)

// Default returns a process-wide Dictionary with the built-in dictionary.
// It is loaded on first use.
func Default() (*Dictionary, error) {
	defaultDictOnce.Do(func() {
		defaultDict, defaultDictErr = NewDictionary()
	})
	return defaultDict, defaultDictErr
}

// Segment is part of interface Segmenter.
func (d *Dictionary) Segment(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	words := d.seg.Cut(text, d.HMM)
	checkLossless(text, words)
	return words, nil
}

// Gse returns the underlying gse segmenter, for lookups which have to cut
// text the same way, e.g. phrase readings.
func (d *Dictionary) Gse() gse.Segmenter {
	return d.seg
}

// --- UAX#29 segmenter ------------------------------------------------------

// UAX29 segments text at Unicode word boundaries.
type UAX29 struct{}

// Segment is part of interface Segmenter.
//
// A segmenter of package uax is not re-entrant, so every call creates a
// fresh one.
func (UAX29) Segment(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	seg := uaxseg.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(strings.NewReader(text))
	var words []string
	for seg.Next() {
		words = append(words, seg.Text())
	}
	if err := seg.Err(); err != nil {
		return nil, err
	}
	checkLossless(text, words)
	return words, nil
}

// ---------------------------------------------------------------------------

// checkLossless warns if a segmentation is not a partition of text.
func checkLossless(text string, words []string) {
	if n := len(strings.Join(words, "")); n != len(text) {
		tracer().Errorf("segmentation lost characters: %d of %d bytes reproduced", n, len(text))
	}
}
