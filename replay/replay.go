// Package replay makes one-shot pull sources re-iterable by recording the
// elements they produce.
//
//	src := replay.FromIter(lazy.FromChan(ch))
//	cyc := catalog.Cycle(src.Seq())
package replay

import (
	"iter"

	"github.com/hasbyte1/go-infiniter/lazy"
)

// Source records everything pulled from a one-shot producer so that it can
// be iterated from the start any number of times. Memory grows with the
// number of distinct elements pulled.
//
// A Source is not safe for concurrent use.
type Source[T any] struct {
	next func() (T, bool)
	stop func()
	seen []T
	done bool
}

// New wraps a pull function with the same contract as [lazy.New].
func New[T any](next func() (T, bool)) *Source[T] {
	return &Source[T]{next: next}
}

// FromIter moves it into a new Source.
func FromIter[T any](it *lazy.Iter[T]) *Source[T] {
	// Map moves the producer; the identity keeps the element type.
	owned := lazy.Map(it, func(v T) T { return v })
	s := New(owned.Next)
	s.stop = owned.Stop
	return s
}

// Stop releases the resources of a source created with [FromIter].
// Recorded elements stay replayable.
func (s *Source[T]) Stop() {
	if s.stop != nil {
		s.stop()
	}
	s.done = true
}

// Seq returns a restartable sequence: each range over it replays the
// recorded elements and then continues pulling from the underlying source.
func (s *Source[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			v, ok := s.at(i)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Recorded returns the number of elements pulled from the source so far.
func (s *Source[T]) Recorded() int { return len(s.seen) }

func (s *Source[T]) at(i int) (T, bool) {
	if i < len(s.seen) {
		return s.seen[i], true
	}
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		return v, false
	}
	s.seen = append(s.seen, v)
	return v, true
}
