package mixture

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/cleaners"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func fake(stage string, table map[string]string) cleaners.Stage {
	return func(payload string) (string, error) {
		if out, ok := table[payload]; ok {
			return out, nil
		}
		return "", cleaners.Failed(stage, fmt.Errorf("unknown payload %q", payload))
	}
}

var zh = fake("zh", map[string]string{
	"你好": "ni↓↑hau↓↑",
	"是":  "s`ɹ`↓",
})

var ja = fake("ja", map[string]string{
	"こんにちは": "koNniʧiwa",
	"はい！":   "hai!",
})

func TestMixtureCleaners(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := NewZhJa(zh, ja)
	for _, c := range []struct{ in, out string }{
		{"[ZH]你好[ZH]", "ni↓↑hau↓↑."},
		{"[ZH]你好[ZH][JA]こんにちは[JA]", "ni↓↑hau↓↑ koNniʧiwa."},
		{"[JA]こんにちは[JA][ZH]是[ZH]", "koNniʧiwa s`ɹ`↓."},
		{"[JA]はい！[JA]", "hai!"},
		{"[ZH]你好[ZH][JA]はい！[JA]", "ni↓↑hau↓↑ hai!"},
	} {
		out, err := d.Clean(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if out != c.out {
			t.Errorf("expected %q to be cleaned to %q, is %q", c.in, c.out, out)
		}
		if strings.Contains(out, "[ZH]") || strings.Contains(out, "[JA]") {
			t.Errorf("expected no markers in %q", out)
		}
	}
}

func TestRepeatedSpans(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := NewZhJa(zh, ja)
	input := "[ZH]你好[ZH][JA]はい！[JA][ZH]你好[ZH]"
	out, err := d.Clean(input)
	if err != nil {
		t.Fatal(err)
	}
	// second instance is left alone, and the final ']' dropped
	if out != "ni↓↑hau↓↑ hai! [ZH]你好[ZH." {
		t.Errorf("expected only the first span instance to be cleaned, have %q", out)
	}
	d.ReplaceDuplicates = true
	out, _ = d.Clean(input)
	if out != "ni↓↑hau↓↑ hai! ni↓↑hau↓↑." {
		t.Errorf("expected every span instance to be cleaned, have %q", out)
	}
}

func TestUnmarkedText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := NewZhJa(zh, ja)
	out, err := d.Clean("[ZH]是[ZH]ok")
	if err != nil {
		t.Fatal(err)
	}
	if out != "s`ɹ`↓ o." {
		t.Errorf("expected unmarked text to be copied, have %q", out)
	}
}

func TestMixtureErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	d := NewZhJa(zh, ja)
	var mie *cleaners.MalformedInputError
	for _, input := range []string{"", "  ", "[ZH]你好", "[ZH]你[JA]好[ZH][JA]", "[ZH][ZH]"} {
		if _, err := d.Clean(input); !errors.As(err, &mie) {
			t.Errorf("expected %q to be malformed, have %v", input, err)
		}
	}
	var cf *cleaners.CollaboratorFailure
	if _, err := d.Clean("[JA]未知[JA]"); !errors.As(err, &cf) || cf.Stage != "ja" {
		t.Errorf("expected failure of Japanese stage, have %v", err)
	}
}

func ExampleDispatcher_Clean() {
	d := NewZhJa(zh, ja)
	out, _ := d.Clean("[ZH]你好[ZH][JA]こんにちは[JA]")
	fmt.Println(out)
	// Output: ni↓↑hau↓↑ koNniʧiwa.
}
