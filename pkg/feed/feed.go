// Package feed hands the newest value from a producer goroutine to a frame
// loop without locks. The producer never blocks and the consumer never waits:
// values that were not read before a newer one arrived are dropped.
package feed

// Latest is a one slot mailbox that always holds the most recent value.
type Latest[T any] struct {
	ch   chan T
	last T
	seen bool
}

// New returns an empty mailbox.
func New[T any]() *Latest[T] {
	return &Latest[T]{ch: make(chan T, 1)}
}

// Publish replaces any unread value with v. Safe to call from one producer
// goroutine while another goroutine polls.
func (l *Latest[T]) Publish(v T) {
	for {
		select {
		case l.ch <- v:
			return
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}

// Poll returns the value published since the previous Poll, if any.
func (l *Latest[T]) Poll() (T, bool) {
	select {
	case v := <-l.ch:
		l.last, l.seen = v, true
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Last polls and then returns the most recent value the consumer has seen.
// The boolean is false until something has been published.
func (l *Latest[T]) Last() (T, bool) {
	l.Poll()
	return l.last, l.seen
}
