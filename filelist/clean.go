package filelist

import (
	"context"
	"fmt"
	"sync"

	"github.com/npillmayer/cleaners"
)

// CleanError reports the record a cleaner failed on.
type CleanError struct {
	Index  int
	Record Record
	Err    error
}

func (e *CleanError) Error() string {
	return fmt.Sprintf("cleaning record %d (%s): %v", e.Index, e.Record.Path, e.Err)
}

func (e *CleanError) Unwrap() error {
	return e.Err
}

// Clean applies a cleaner to the text of every record and returns the
// cleaned records, in input order. Records are cleaned by up to workers
// goroutines; utterances do not depend on each other.
//
// The first failure cancels the remaining work and is returned as a
// *CleanError.
func Clean(ctx context.Context, records []Record, clean cleaners.Stage, workers int) ([]Record, error) {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	out := make([]Record, len(records))
	var once sync.Once
	var first error
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
loop:
	for i := range records {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}
			text, err := clean(records[i].Text)
			if err != nil {
				fail(&CleanError{Index: i, Record: records[i], Err: err})
				return
			}
			out[i] = records[i]
			out[i].Text = text
		}(i)
	}
	wg.Wait()
	if first != nil {
		tracer().Errorf("%v", first)
		return nil, first
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("cleaned %d records", len(records))
	return out, nil
}
