package pipeline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cleaners/bopomofo"
	"github.com/npillmayer/cleaners/japanese"
	"github.com/npillmayer/cleaners/mandarin"
	"github.com/npillmayer/cleaners/mixture"
	"github.com/npillmayer/cleaners/numerals"
	"github.com/npillmayer/cleaners/segment"
)

// Segmenter names for Config.Segmenter.
const (
	SegmenterDictionary = "dict"
	SegmenterUAX29      = "uax29"
)

// Config configures the cleaners.
type Config struct {
	Segmenter         string   // SegmenterDictionary (default) or SegmenterUAX29
	UserDicts         []string // dictionary files replacing the built-in segmenter dictionary
	RepeatedNumerals  bool     // spell out repeated numerals, too
	ReplaceDuplicates bool     // clean repeated identical language spans, too
}

// Collaborators are the external capabilities the cleaners depend on.
// Nil collaborators are replaced by the package defaults.
type Collaborators struct {
	Numerals  numerals.Converter
	Segmenter segment.Segmenter
	Phonetic  bopomofo.PhoneticConverter
	Romanizer japanese.Romanizer
}

// New creates a registry with the cleaners
//
//     chinese_cleaners
//     japanese_cleaners
//     zh_ja_mixture_cleaners
//
// using the default collaborators. Loading the segmenter and romanizer
// dictionaries takes a moment; clients should create a registry once.
func New(cfg Config) (*Registry, error) {
	var c Collaborators
	seg, err := NewSegmenter(cfg)
	if err != nil {
		return nil, err
	}
	c.Segmenter = seg
	if d, ok := seg.(*segment.Dictionary); ok {
		c.Phonetic = bopomofo.NewPhraseConverter(d)
	}
	if c.Romanizer, err = japanese.NewKagomeRomanizer(); err != nil {
		return nil, fmt.Errorf("creating Japanese romanizer: %w", err)
	}
	return Assemble(cfg, c), nil
}

// NewSegmenter creates the word segmenter named in cfg.
func NewSegmenter(cfg Config) (segment.Segmenter, error) {
	switch strings.ToLower(cfg.Segmenter) {
	case "", SegmenterDictionary:
		var d *segment.Dictionary
		var err error
		if len(cfg.UserDicts) > 0 {
			d, err = segment.NewDictionary(cfg.UserDicts...)
		} else {
			d, err = segment.Default()
		}
		if err != nil {
			return nil, err
		}
		return d, nil
	case SegmenterUAX29:
		return segment.UAX29{}, nil
	}
	return nil, fmt.Errorf("unknown segmenter %q", cfg.Segmenter)
}

// Assemble creates a registry from explicit collaborators.
// c.Romanizer must not be nil.
func Assemble(cfg Config, c Collaborators) *Registry {
	n := numerals.New(c.Numerals)
	n.Repeats = cfg.RepeatedNumerals
	zh := mandarin.New(n, bopomofo.NewMapper(c.Segmenter, c.Phonetic))
	ja := japanese.New(c.Romanizer)
	mix := mixture.NewZhJa(zh.Romanize, ja.Romanize)
	mix.ReplaceDuplicates = cfg.ReplaceDuplicates
	//
	reg := NewRegistry()
	reg.Register(mandarin.CleanerName, zh.Clean)
	reg.Register(japanese.CleanerName, ja.Clean)
	reg.Register(mixture.CleanerName, mix.Clean)
	tracer().Infof("cleaners available: %v", reg.Names())
	return reg
}

