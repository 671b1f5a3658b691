package cleaners

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestComposeAppliesInOrder(t *testing.T) {
	appendA := Lift(func(s string) string { return s + "a" })
	double := Lift(func(s string) string { return s + s })
	out, err := Compose(appendA, double)("x")
	if err != nil {
		t.Fatal(err)
	}
	if out != "xaxa" {
		t.Errorf("expected composition to yield 'xaxa', is %q", out)
	}
}

func TestComposeStopsOnError(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	boom := errors.New("boom")
	called := false
	failing := func(string) (string, error) { return "", Failed("test", boom) }
	after := func(s string) (string, error) { called = true; return s, nil }
	_, err := Compose(failing, after)("x")
	var cf *CollaboratorFailure
	if !errors.As(err, &cf) || cf.Stage != "test" || !errors.Is(err, boom) {
		t.Errorf("expected collaborator failure wrapping boom, have %v", err)
	}
	if called {
		t.Error("stage after failing stage should not have been called")
	}
}

func TestRequireText(t *testing.T) {
	var mie *MalformedInputError
	if err := RequireText("test", " \t\n"); !errors.As(err, &mie) {
		t.Errorf("expected malformed input error for blank text, have %v", err)
	}
	if err := RequireText("test", "你好"); err != nil {
		t.Errorf("expected no error, have %v", err)
	}
}

func TestLastRune(t *testing.T) {
	r, err := LastRune("test", "好ˇ")
	if err != nil || r != 'ˇ' {
		t.Errorf("expected last rune to be ˇ, is %q (%v)", r, err)
	}
	if _, err = LastRune("test", ""); err == nil {
		t.Error("expected error for empty text")
	}
	if s := DropLastRune("ab→"); s != "ab" {
		t.Errorf("expected 'ab', is %q", s)
	}
}

func TestMalformedErrorClipsInput(t *testing.T) {
	err := Malformed("test", strings.Repeat("字", 100), "too long")
	if n := len([]rune(err.Error())); n > 100 {
		t.Errorf("expected error message to be clipped, has %d runes", n)
	}
}
