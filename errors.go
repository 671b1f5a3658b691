package cleaners

import (
	"errors"
	"fmt"
)

// MalformedInputError flags input the cleaners cannot process: text which
// is empty after trimming, unbalanced or interleaved language markers,
// or a stage result without a final character to inspect.
type MalformedInputError struct {
	Stage  string // stage which detected the problem
	Input  string // offending input
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: malformed input %q: %s", e.Stage, clip(e.Input), e.Reason)
}

// Malformed creates a new MalformedInputError.
func Malformed(stage, input, reason string) error {
	return &MalformedInputError{Stage: stage, Input: input, Reason: reason}
}

// CollaboratorFailure wraps an error of an external collaborator, i.e. a
// numeral converter, a word segmenter, a phonetic converter or a romanizer.
// Stage identifies which collaborator failed.
type CollaboratorFailure struct {
	Stage string
	Err   error
}

func (e *CollaboratorFailure) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *CollaboratorFailure) Unwrap() error {
	return e.Err
}

// Failed wraps err into a CollaboratorFailure for stage.
// If err is nil, a generic no-result error is reported.
func Failed(stage string, err error) error {
	if err == nil {
		err = ErrNoResult
	}
	CT().P("stage", stage).Errorf("collaborator failure: %v", err)
	return &CollaboratorFailure{Stage: stage, Err: err}
}

var (
	// ErrNoResult is used by collaborators which did not error, but did not
	// produce anything either.
	ErrNoResult = errors.New("collaborator returned no result")
	// ErrUnknownCleaner is returned for a request to apply a cleaner which
	// has not been registered.
	ErrUnknownCleaner = errors.New("unknown cleaner")
)

// clip shortens long input for error messages.
func clip(s string) string {
	const maxlen = 48
	r := []rune(s)
	if len(r) <= maxlen {
		return s
	}
	return string(r[:maxlen]) + "…"
}
