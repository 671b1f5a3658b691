package bopomofo

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gpy/phrase"
	"github.com/mozillazg/go-pinyin"
	"github.com/npillmayer/cleaners/ruletable"
	"github.com/npillmayer/cleaners/segment"
)

// PhoneticConverter converts a word to phonetic syllables, one unit per
// character of the word. A unit may or may not end in a tone mark.
type PhoneticConverter interface {
	Convert(word string) ([]string, error)
}

// ConverterFunc is an adapter to use ordinary functions as PhoneticConverters.
type ConverterFunc func(string) ([]string, error)

// Convert calls f(word).
func (f ConverterFunc) Convert(word string) ([]string, error) {
	return f(word)
}

// PinyinConverter converts Han characters to bopomofo by way of numbered
// pinyin. Characters which are not Han, or for which no reading is known,
// are returned unchanged.
//
// Without a phrase dictionary, polyphonic characters get their most frequent
// reading. With one, words of two or more Han characters are looked up as a
// whole first, so that 银行 reads "yin2 hang2" instead of "yin2 xing2".
type PinyinConverter struct {
	args    pinyin.Args
	phrases *segment.Dictionary
}

// NewPinyinConverter creates a PinyinConverter reading characters one by one.
func NewPinyinConverter() *PinyinConverter {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	args.Heteronym = false
	return &PinyinConverter{args: args}
}

// NewPhraseConverter creates a PinyinConverter which looks up words in the
// phrase dictionary before falling back to single characters.
// Phrases are cut with the segmenter dictionary d.
func NewPhraseConverter(d *segment.Dictionary) *PinyinConverter {
	pc := NewPinyinConverter()
	pc.phrases = d
	return pc
}

// Convert is part of interface PhoneticConverter.
func (pc *PinyinConverter) Convert(word string) ([]string, error) {
	if units := pc.phrase(word); units != nil {
		return units, nil
	}
	units := make([]string, 0, len(word)/3+1)
	for _, r := range word {
		if !unicode.Is(unicode.Han, r) {
			units = append(units, string(r))
			continue
		}
		readings := pinyin.SinglePinyin(r, pc.args)
		if len(readings) == 0 || readings[0] == "" {
			tracer().Debugf("no reading for %#U", r)
			units = append(units, string(r))
			continue
		}
		units = append(units, Syllable(readings[0]))
	}
	return units, nil
}

// phrase converts a word of Han characters with the phrase dictionary.
// It returns nil if there is no phrase dictionary, if the word is a single
// character or contains other characters, or if the reading found does not
// have one syllable per character.
func (pc *PinyinConverter) phrase(word string) []string {
	n := utf8.RuneCountInString(word)
	if pc.phrases == nil || n < 2 {
		return nil
	}
	for _, r := range word {
		if !unicode.Is(unicode.Han, r) {
			return nil
		}
	}
	readings := strings.Fields(phrase.Paragraph(word, pc.phrases.Gse()))
	if len(readings) != n {
		tracer().Debugf("phrase reading %v does not fit %q", readings, word)
		return nil
	}
	units := make([]string, n)
	for i, py := range readings {
		num, ok := Numbered(py)
		if !ok {
			return nil
		}
		units[i] = Syllable(num)
	}
	return units
}

// toneVowels maps vowels with a tone diacritic to the plain vowel and the
// tone number.
var toneVowels = map[rune]string{
	'ā': "a1", 'á': "a2", 'ǎ': "a3", 'à': "a4",
	'ē': "e1", 'é': "e2", 'ě': "e3", 'è': "e4",
	'ī': "i1", 'í': "i2", 'ǐ': "i3", 'ì': "i4",
	'ō': "o1", 'ó': "o2", 'ǒ': "o3", 'ò': "o4",
	'ū': "u1", 'ú': "u2", 'ǔ': "u3", 'ù': "u4",
	'ǖ': "v1", 'ǘ': "v2", 'ǚ': "v3", 'ǜ': "v4",
	'ń': "n2", 'ň': "n3", 'ǹ': "n4", 'ḿ': "m2",
}

// Numbered rewrites a syllable of pinyin with tone diacritics ("háng") to
// numbered pinyin ("hang2"). A syllable without a diacritic is returned
// without a digit. Numbered reports false if py is not a pinyin syllable.
func Numbered(py string) (string, bool) {
	var b strings.Builder
	var tone byte
	for _, r := range strings.ToLower(py) {
		switch {
		case r >= 'a' && r <= 'z', r == 'ü', r == 'ê':
			b.WriteRune(r)
		case toneVowels[r] != "":
			v := toneVowels[r]
			b.WriteByte(v[0])
			tone = v[1]
		default:
			return "", false
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	if tone != 0 {
		b.WriteByte(tone)
	}
	return b.String(), true
}

// Syllable converts one syllable of numbered pinyin to bopomofo.
// "ü" may be written as "v" or "ü".
func Syllable(py string) string {
	py = strings.ReplaceAll(strings.ToLower(py), "ü", "v")
	return ruletable.PinyinToBopomofo.Apply(py)
}
