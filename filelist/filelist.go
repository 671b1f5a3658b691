/*
Package filelist reads and writes the filelists of a speech corpus.

A filelist holds one utterance per line, as three fields separated by '|':

    Wave/0001.wav|10|[ZH]你好[ZH]

audio path, speaker id and text. Corpus sources often come as two-field
lists "id|text"; those are turned into records with ReadSource.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package filelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Separator separates the fields of a record.
const Separator = "|"

// Record is a line of a filelist.
type Record struct {
	Path    string // audio file
	Speaker string // speaker id
	Text    string
}

func (rec Record) String() string {
	return rec.Path + Separator + rec.Speaker + Separator + rec.Text
}

// ParseError reports a malformed line of a filelist.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filelist line %d: %s", e.Line, e.Reason)
}

// ParseRecord parses a single line. The text field may contain the
// separator.
func ParseRecord(line string) (Record, error) {
	fields := strings.SplitN(line, Separator, 3)
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("expected 3 fields, have %d", len(fields))
	}
	if fields[0] == "" {
		return Record{}, fmt.Errorf("empty audio path")
	}
	return Record{Path: fields[0], Speaker: fields[1], Text: fields[2]}, nil
}

// Read reads records, one per line. Empty lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	err := scanLines(r, func(n int, line string) error {
		rec, err := ParseRecord(line)
		if err != nil {
			return &ParseError{Line: n, Reason: err.Error()}
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

// Source describes how to turn lines "id|text" into records.
type Source struct {
	PathPattern string // fmt pattern for the audio path, with a single %s for the id
	Speaker     string
}

// DefaultSource is the layout of a single speaker corpus.
var DefaultSource = Source{PathPattern: "Wave/%s.wav", Speaker: "10"}

// ReadSource reads lines "id|text" and creates records from them.
func ReadSource(r io.Reader, src Source) ([]Record, error) {
	var records []Record
	err := scanLines(r, func(n int, line string) error {
		id, text, ok := strings.Cut(line, Separator)
		if !ok || id == "" {
			return &ParseError{Line: n, Reason: "expected id|text"}
		}
		records = append(records, Record{
			Path:    fmt.Sprintf(src.PathPattern, id),
			Speaker: src.Speaker,
			Text:    text,
		})
		return nil
	})
	return records, err
}

func scanLines(r io.Reader, f func(int, string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := f(n, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Write writes records, one per line.
func Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(rec.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Split divides records into a training and a validation list.
// Only the first limit records are considered (all of them if limit <= 0).
// Of these, the first train records form the training list and the last
// val records the validation list. The lists may overlap if train+val
// exceeds the number of records considered.
func Split(records []Record, limit, train, val int) (trainList, valList []Record) {
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	train = clamp(train, len(records))
	val = clamp(val, len(records))
	tracer().Debugf("split %d records into %d for training, %d for validation", len(records), train, val)
	return records[:train], records[len(records)-val:]
}

func clamp(n, upper int) int {
	if n < 0 {
		return 0
	}
	if n > upper {
		return upper
	}
	return n
}
