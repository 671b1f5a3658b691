package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/cleaners/bopomofo"
	"github.com/npillmayer/cleaners/japanese"
	"github.com/npillmayer/cleaners/numerals"
	"github.com/npillmayer/cleaners/segment"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// --- Fakes -----------------------------------------------------------------

var readings = map[rune]string{
	'你': "ㄋㄧˇ",
	'好': "ㄏㄠˇ",
	'两': "ㄌㄧㄤˇ",
	'个': "ㄍㄜ",
}

func fakeCollaborators() Collaborators {
	return Collaborators{
		Numerals: numerals.ConverterFunc(func(n string) (string, error) {
			if n == "2" {
				return "两", nil
			}
			return "", fmt.Errorf("cannot convert %q", n)
		}),
		Segmenter: segment.SegmenterFunc(func(text string) ([]string, error) {
			return []string{text}, nil
		}),
		Phonetic: bopomofo.ConverterFunc(func(word string) ([]string, error) {
			var units []string
			for _, r := range word {
				if u, ok := readings[r]; ok {
					units = append(units, u)
				} else {
					units = append(units, string(r))
				}
			}
			return units, nil
		}),
		Romanizer: japanese.RomanizerFunc(func(text string) (string, error) {
			if text == "こんにちは" {
				return "koNniʧiwa", nil
			}
			return "", errors.New("unknown")
		}),
	}
}

// ---------------------------------------------------------------------------

func TestRegistryNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	reg := Assemble(Config{}, fakeCollaborators())
	names := reg.Names()
	expected := []string{"chinese_cleaners", "japanese_cleaners", "zh_ja_mixture_cleaners"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected cleaner #%d to be %s, is %s", i, expected[i], names[i])
		}
	}
}

func TestCleanByName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	reg := Assemble(Config{}, fakeCollaborators())
	for _, c := range []struct{ in, cleaner, out string }{
		{"你好", "chinese_cleaners", "ㄋㄧˇㄏㄠˇ。"},
		{"2个", "chinese_cleaners", "ㄌㄧㄤˇㄍㄜˉ。"},
		{"こんにちは", "japanese_cleaners", "koNniʧiwa."},
		{"[ZH]你好[ZH]", "zh_ja_mixture_cleaners", "ni↓↑hau↓↑."},
		{"[ZH]你好[ZH][JA]こんにちは[JA]", "zh_ja_mixture_cleaners", "ni↓↑hau↓↑ koNniʧiwa."},
	} {
		out, err := reg.Clean(c.in, c.cleaner)
		if err != nil {
			t.Fatal(err)
		}
		if out != c.out {
			t.Errorf("%s: expected %q to be cleaned to %q, is %q", c.cleaner, c.in, c.out, out)
		}
	}
}

func TestCleanersAreChained(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := NewRegistry()
	reg.Register("upper", cleaners.Lift(strings.ToUpper))
	reg.Register("exclaim", cleaners.Lift(func(s string) string { return s + "!" }))
	out, err := reg.Clean("hey", "upper", "exclaim", "exclaim")
	if err != nil || out != "HEY!!" {
		t.Errorf("expected 'HEY!!', have %q, %v", out, err)
	}
	if out, _ = reg.Clean("hey"); out != "hey" {
		t.Errorf("expected empty list of cleaners to leave text alone, have %q", out)
	}
}

func TestUnknownCleaner(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := Assemble(Config{}, fakeCollaborators())
	if _, err := reg.Clean("你好", "chinese_cleaners", "klingon_cleaners"); !errors.Is(err, cleaners.ErrUnknownCleaner) {
		t.Errorf("expected unknown cleaner error, have %v", err)
	}
}

func TestDuplicatePolicies(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "[ZH]你好[ZH][ZH]你好[ZH]"
	reg := Assemble(Config{}, fakeCollaborators())
	out, _ := reg.Clean(input, "zh_ja_mixture_cleaners")
	if !strings.Contains(out, "[ZH]") {
		t.Errorf("expected repeated span to be left alone, have %q", out)
	}
	reg = Assemble(Config{ReplaceDuplicates: true}, fakeCollaborators())
	out, _ = reg.Clean(input, "zh_ja_mixture_cleaners")
	if out != "ni↓↑hau↓↑ ni↓↑hau↓↑." {
		t.Errorf("expected both spans to be cleaned, have %q", out)
	}
	reg = Assemble(Config{RepeatedNumerals: true}, fakeCollaborators())
	out, _ = reg.Clean("2个2个", "chinese_cleaners")
	if out != "ㄌㄧㄤˇㄍㄜˉㄌㄧㄤˇㄍㄜˉ。" {
		t.Errorf("expected both numerals to be spelled out, have %q", out)
	}
}

func TestNeutralToneIsTerminated(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	c := fakeCollaborators()
	c.Segmenter = segment.UAX29{}
	c.Phonetic = bopomofo.NewPinyinConverter()
	reg := Assemble(Config{}, c)
	for _, c := range []struct{ in, out string }{
		{"[ZH]儿子[ZH]", "əɹ`↑ ʦ⁼ɹ→."},
		{"[ZH]我的[ZH]", "wo↓↑ t⁼ə→."},
	} {
		out, err := reg.Clean(c.in, "zh_ja_mixture_cleaners")
		if err != nil {
			t.Fatal(err)
		}
		if out != c.out {
			t.Errorf("expected %q to be cleaned to %q, is %q", c.in, c.out, out)
		}
	}
}

func TestPhraseReadings(t *testing.T) {
	if testing.Short() {
		t.Skip("loading dictionaries takes time")
	}
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	d, err := segment.Default()
	if err != nil {
		t.Fatal(err)
	}
	c := fakeCollaborators()
	c.Segmenter = d
	c.Phonetic = bopomofo.NewPhraseConverter(d)
	reg := Assemble(Config{}, c)
	out, err := reg.Clean("[ZH]银行[ZH]", "zh_ja_mixture_cleaners")
	if err != nil {
		t.Fatal(err)
	}
	if out != "iNN↑haNg↑." {
		t.Errorf("expected 行 to be read as hang2 within 银行, have %q", out)
	}
}

func TestNewSegmenter(t *testing.T) {
	seg, err := NewSegmenter(Config{Segmenter: "UAX29"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := seg.(segment.UAX29); !ok {
		t.Errorf("expected UAX#29 segmenter, have %T", seg)
	}
	if _, err = NewSegmenter(Config{Segmenter: "whitespace"}); err == nil {
		t.Error("expected unknown segmenter to be rejected")
	}
}

func TestDefaultCollaborators(t *testing.T) {
	if testing.Short() {
		t.Skip("loading dictionaries takes time")
	}
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	reg, err := New(Config{Segmenter: SegmenterUAX29})
	if err != nil {
		t.Fatal(err)
	}
	out, err := reg.Clean("[ZH]你好[ZH]", "zh_ja_mixture_cleaners")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out, ".") || strings.Contains(out, "[ZH]") {
		t.Errorf("expected terminated output without markers, have %q", out)
	}
	if !strings.Contains(out, "ni↓↑") || !strings.Contains(out, "hau↓↑") {
		t.Errorf("expected romanized syllables of 你好, have %q", out)
	}
}

func ExampleRegistry_Clean() {
	reg := Assemble(Config{}, fakeCollaborators())
	out, _ := reg.Clean("[ZH]你好[ZH][JA]こんにちは[JA]", "zh_ja_mixture_cleaners")
	fmt.Println(out)
	// Output: ni↓↑hau↓↑ koNniʧiwa.
}
