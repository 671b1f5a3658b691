package japanese

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/npillmayer/cleaners/ruletable"
)

// Romanizer converts Japanese text to romaji.
type Romanizer interface {
	Romanize(text string) (string, error)
}

// RomanizerFunc is an adapter to use ordinary functions as Romanizers.
type RomanizerFunc func(string) (string, error)

// Romanize calls f(text).
func (f RomanizerFunc) Romanize(text string) (string, error) {
	return f(text)
}

// KagomeRomanizer romanizes Japanese text by morphological analysis:
// the pronunciation of every morpheme is looked up in the IPA dictionary
// and romanized with ruletable.KanaToRomaji.
//
// Morphemes are grouped into phrases: every independent word starts a new
// phrase, while particles, auxiliaries, suffixes and punctuation attach to
// the preceding one. Phrases are separated by a space.
// No pitch accent marks are produced.
type KagomeRomanizer struct {
	t *tokenizer.Tokenizer
}

// NewKagomeRomanizer creates a romanizer with the IPA dictionary.
func NewKagomeRomanizer() (*KagomeRomanizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeRomanizer{t: t}, nil
}

// IPA dictionary feature columns.
const (
	featPOS           = 0
	featPOSDetail     = 1
	featReading       = 7
	featPronunciation = 8
)

// Romanize is part of interface Romanizer.
func (k *KagomeRomanizer) Romanize(text string) (string, error) {
	var b strings.Builder
	for _, token := range k.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY || strings.TrimSpace(token.Surface) == "" {
			continue
		}
		features := token.Features()
		if b.Len() > 0 && startsPhrase(features) {
			b.WriteByte(' ')
		}
		b.WriteString(ruletable.KanaToRomaji.Apply(Katakana(kana(token.Surface, features))))
	}
	tracer().Debugf("romanized %q → %q", text, b.String())
	return b.String(), nil
}

// kana returns the pronunciation of a morpheme, falling back to its
// reading and then to its surface form.
func kana(surface string, features []string) string {
	for _, i := range []int{featPronunciation, featReading} {
		if len(features) > i && features[i] != "*" && features[i] != "" {
			return features[i]
		}
	}
	return surface
}

func startsPhrase(features []string) bool {
	if len(features) <= featPOSDetail {
		return true
	}
	switch features[featPOS] {
	case "助詞", "助動詞", "記号":
		return false
	}
	switch features[featPOSDetail] {
	case "接尾", "非自立":
		return false
	}
	return true
}

// Katakana folds hiragana in s to katakana.
func Katakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + 0x60
		}
		return r
	}, s)
}
