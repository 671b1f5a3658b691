package cleaners

// RuneSubscriber receives rune events from a RunePublisher.
// Recognizer is the standard implementation.
type RuneSubscriber interface {
	RuneEvent(r rune) bool // consume r, true if r completed a match
	MatchLength() int      // runes matched so far
	Class() int            // pattern class
	Done() bool            // no more runes will be consumed
	Unsubscribed()         // called once the publisher has dropped the subscriber
}

// Match is a match reported by a RunePublisher. It ends with the rune most
// recently published and is Len runes long.
type Match struct {
	Class int
	Len   int
}

// RunePublisher broadcasts runes to its subscribers.
type RunePublisher interface {
	SubscribeMe(RuneSubscriber) RunePublisher
	PublishRuneEvent(r rune) (longest int, accepted []Match)
}

// DefaultRunePublisher keeps its subscribers in order of subscription.
// Subscribers which are done are dropped after every event.
type DefaultRunePublisher struct {
	subscribers []RuneSubscriber
	accepted    []Match
}

// NewRunePublisher creates a publisher without subscribers.
func NewRunePublisher() *DefaultRunePublisher {
	return &DefaultRunePublisher{}
}

// Len returns the number of subscribers.
func (rpub *DefaultRunePublisher) Len() int {
	return len(rpub.subscribers)
}

// SubscribeMe is part of interface RunePublisher. Subscribers which are
// already done are dropped immediately.
func (rpub *DefaultRunePublisher) SubscribeMe(rsub RuneSubscriber) RunePublisher {
	if rsub.Done() {
		rsub.Unsubscribed()
		return rpub
	}
	rpub.subscribers = append(rpub.subscribers, rsub)
	return rpub
}

// PublishRuneEvent sends r to every subscriber. It returns the length of the
// longest match still in progress and the matches completed by r, in order
// of subscription. The slice of matches is reused by the next call.
func (rpub *DefaultRunePublisher) PublishRuneEvent(r rune) (int, []Match) {
	rpub.accepted = rpub.accepted[:0]
	longest := 0
	active := rpub.subscribers[:0]
	for _, s := range rpub.subscribers {
		if s.RuneEvent(r) {
			rpub.accepted = append(rpub.accepted, Match{Class: s.Class(), Len: s.MatchLength()})
		}
		if s.Done() {
			s.Unsubscribed()
			continue
		}
		if n := s.MatchLength(); n > longest {
			longest = n
		}
		active = append(active, s)
	}
	rpub.truncate(len(active))
	return longest, rpub.accepted
}

// Reset unsubscribes all subscribers, whether they are done or not.
func (rpub *DefaultRunePublisher) Reset() {
	for _, s := range rpub.subscribers {
		s.Unsubscribed()
	}
	rpub.truncate(0)
	rpub.accepted = rpub.accepted[:0]
}

// truncate shortens the subscriber list to n, releasing references.
func (rpub *DefaultRunePublisher) truncate(n int) {
	for i := n; i < len(rpub.subscribers); i++ {
		rpub.subscribers[i] = nil
	}
	rpub.subscribers = rpub.subscribers[:n]
}
