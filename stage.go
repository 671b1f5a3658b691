package cleaners

import (
	"strings"
	"unicode/utf8"
)

// Stage is a single text-to-text transformation. Stages must be pure:
// the same input always yields the same output, and no state is kept
// between calls.
type Stage func(string) (string, error)

// Compose creates a stage which applies all the given stages in sequence,
// feeding the output of each stage into the next one.
// The first error stops the sequence.
func Compose(stages ...Stage) Stage {
	return func(text string) (string, error) {
		var err error
		for _, stage := range stages {
			if text, err = stage(text); err != nil {
				return "", err
			}
		}
		return text, nil
	}
}

// Lift turns an infallible string function into a Stage.
func Lift(f func(string) string) Stage {
	return func(text string) (string, error) {
		return f(text), nil
	}
}

// RequireText checks that text is not empty after trimming white space.
// stage is used for error reporting only.
func RequireText(stage, text string) error {
	if strings.TrimSpace(text) == "" {
		return Malformed(stage, text, "input is empty")
	}
	return nil
}

// LastRune returns the final code-point of text.
// If text is empty, a MalformedInputError is returned.
func LastRune(stage, text string) (rune, error) {
	if text == "" {
		return utf8.RuneError, Malformed(stage, text, "cannot inspect final character of empty text")
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	return r, nil
}

// DropLastRune removes the final code-point of text.
func DropLastRune(text string) string {
	_, sz := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-sz]
}
