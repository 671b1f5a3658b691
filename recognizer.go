package cleaners

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// StateFn is a state of a Recognizer. It consumes a single rune and returns
// the state expecting the next rune, or nil if the recognizer has finished,
// either by accepting or by giving up.
type StateFn func(*Recognizer, rune) StateFn

// Recognizer matches a pattern against a sequence of runes, one rune event
// at a time. The pattern is a chain of StateFns.
//
// State functions have to increment MatchLen for every rune they consume;
// match positions are derived from it.
type Recognizer struct {
	Expect   int // class of the pattern, chosen by the client
	MatchLen int // number of runes matched so far
	accepted bool
	state    StateFn
}

// NewRecognizer creates an unpooled Recognizer for pattern class with
// initial state start.
func NewRecognizer(class int, start StateFn) *Recognizer {
	return &Recognizer{Expect: class, state: start}
}

// NewPooledRecognizer is like NewRecognizer, but takes the Recognizer from
// a pool. It returns to the pool when it is unsubscribed from its publisher.
func NewPooledRecognizer(class int, start StateFn) *Recognizer {
	rec := recognizers.get()
	rec.Expect = class
	rec.state = start
	return rec
}

func (rec *Recognizer) String() string {
	if rec == nil {
		return "<no recognizer>"
	}
	return fmt.Sprintf("<recognizer %d len=%d done=%v>", rec.Expect, rec.MatchLen, rec.Done())
}

// RuneEvent feeds r to the current state. It returns true if r completed
// a match.
func (rec *Recognizer) RuneEvent(r rune) bool {
	if rec.state == nil {
		return false
	}
	rec.state = rec.state(rec, r)
	return rec.state == nil && rec.accepted
}

// Done is true as soon as the recognizer will not consume more runes.
func (rec *Recognizer) Done() bool {
	return rec.state == nil
}

// Accepted is true if the recognizer has matched its pattern.
func (rec *Recognizer) Accepted() bool {
	return rec.accepted
}

// Class is part of interface RuneSubscriber.
func (rec *Recognizer) Class() int {
	return rec.Expect
}

// MatchLength is part of interface RuneSubscriber.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// Unsubscribed is part of interface RuneSubscriber. The recognizer must not
// be used afterwards.
func (rec *Recognizer) Unsubscribed() {
	recognizers.put(rec)
}

// --- States ----------------------------------------------------------------

// DoAbort ends matching without success.
func DoAbort(rec *Recognizer) StateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept consumes the current rune and ends matching with success.
func DoAccept(rec *Recognizer) StateFn {
	rec.MatchLen++
	rec.accepted = true
	CT().Debugf("recognizer %d accepts after %d runes", rec.Expect, rec.MatchLen)
	return nil
}

// LiteralRule creates a chain of states matching the runes of lit.
// The chain for an empty literal aborts on the first rune.
func LiteralRule(lit string) StateFn {
	runes := []rune(lit)
	var next StateFn
	next = func(rec *Recognizer, r rune) StateFn {
		switch {
		case rec.MatchLen >= len(runes) || r != runes[rec.MatchLen]:
			return DoAbort(rec)
		case rec.MatchLen+1 == len(runes):
			return DoAccept(rec)
		}
		rec.MatchLen++
		return next
	}
	return next
}

// --- Pooling ---------------------------------------------------------------

// A marker scan creates a recognizer for every candidate position of a
// marker. They live for a few runes only and are recycled.
var recognizers = newRecognizerPool()

type recognizerPool struct {
	objects *pool.ObjectPool
}

func newRecognizerPool() *recognizerPool {
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // unlimited
	config.BlockWhenExhausted = false
	factory := pool.NewPooledObjectFactorySimple(func(context.Context) (interface{}, error) {
		return &Recognizer{}, nil
	})
	return &recognizerPool{objects: pool.NewObjectPool(context.Background(), factory, config)}
}

func (p *recognizerPool) get() *Recognizer {
	o, err := p.objects.BorrowObject(context.Background())
	if err != nil {
		CT().Errorf("recognizer pool: %v", err)
		return &Recognizer{}
	}
	return o.(*Recognizer)
}

func (p *recognizerPool) put(rec *Recognizer) {
	*rec = Recognizer{}
	if err := p.objects.ReturnObject(context.Background(), rec); err != nil {
		CT().Debugf("recognizer pool: %v", err)
	}
}
