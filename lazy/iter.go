package lazy

import (
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"slices"
	"strings"
)

// Unbounded is the value [Iter.Len] reports for an unbounded iterator.
const Unbounded = -1

// previewRows is the number of (index, element) rows rendered by Preview.
const previewRows = 11

// Iter is a lazy, single-pass sequence of T.
//
// An Iter wraps a pull producer: each call to [Iter.Next] asks the producer
// for exactly one element. Nothing runs ahead of demand.
//
// # Boundedness
//
// Every Iter carries an "unbounded" flag set when it is constructed and
// propagated by transformations. The flag is never inferred by running the
// producer. Finite-only operations ([Iter.Collect], [Sum], [Sort], ...)
// return an [UnboundedError] instead of looping forever when it is set.
//
// # Ownership
//
// Transformations such as [Iter.Filter] or [Map] move the producer into the
// returned Iter. The receiver is spent afterwards and any further use of it
// panics with [ErrConsumed]:
//
//	evens := it.Filter(isEven) // it is spent from here on
//	it.Next()                  // panics
//
// An Iter must not be used from several goroutines at once.
type Iter[T any] struct {
	next      func() (T, bool)
	stop      func()
	unbounded bool
	spent     bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New wraps a pull function. next returns the following element and true,
// or the zero value and false once the sequence is exhausted. It must keep
// returning false after that.
//
// The iterator is bounded unless [WithUnbounded] is given.
func New[T any](next func() (T, bool), opts ...Option) *Iter[T] {
	cfg := newConfig(opts...)
	return &Iter[T]{next: next, unbounded: cfg.unbounded, stop: cfg.stop}
}

// FromSlice creates an Iter over a copy of items.
func FromSlice[T any](items []T, opts ...Option) *Iter[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	i := 0
	return New(func() (T, bool) {
		if i >= len(dst) {
			var zero T
			return zero, false
		}
		v := dst[i]
		i++
		return v, true
	}, opts...)
}

// Of creates a bounded Iter from a variadic list of items.
func Of[T any](items ...T) *Iter[T] { return FromSlice(items) }

// Empty creates a bounded Iter that yields nothing.
func Empty[T any]() *Iter[T] {
	return New(func() (T, bool) {
		var zero T
		return zero, false
	})
}

// FromSeq adapts a range-over-func sequence with [iter.Pull].
//
// Call [Iter.Stop] (on this iterator or on the one it was moved into) when
// abandoning it before exhaustion, as required by iter.Pull.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Iter[T] {
	next, stop := iter.Pull(seq)
	return New(next, slices.Concat(opts, []Option{WithStop(stop)})...)
}

// FromChan pulls from ch until it is closed.
func FromChan[T any](ch <-chan T, opts ...Option) *Iter[T] {
	return New(func() (T, bool) {
		v, ok := <-ch
		return v, ok
	}, opts...)
}

// derive builds the child of a transformation.
func derive[T any](next func() (T, bool), unbounded bool, stop func()) *Iter[T] {
	return &Iter[T]{next: next, unbounded: unbounded, stop: stop}
}

// move hands the producer over to a derived iterator and marks it spent.
func (it *Iter[T]) move(op string) (func() (T, bool), func()) {
	it.mustLive(op)
	next, stop := it.next, it.stop
	it.next, it.stop = nil, nil
	it.spent = true
	return next, stop
}

// checkOperands panics with ErrConsumed if any of it and others is spent or
// appears twice, so that a rejected call leaves every operand untouched.
func checkOperands[T any](op string, it *Iter[T], others []*Iter[T]) {
	seen := make(map[*Iter[T]]bool, len(others)+1)
	for _, o := range append([]*Iter[T]{it}, others...) {
		o.mustLive(op)
		if seen[o] {
			panic(fmt.Errorf("%w: %s() got the same iterator twice", ErrConsumed, op))
		}
		seen[o] = true
	}
}

func (it *Iter[T]) mustLive(op string) {
	if it.spent {
		panic(fmt.Errorf("%w: %s() called on a spent iterator", ErrConsumed, op))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsUnbounded reports whether the iterator is marked as never ending.
func (it *Iter[T]) IsUnbounded() bool { return it.unbounded }

// Next pulls exactly one element. It returns the zero value and false once
// the sequence is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	it.mustLive("Next")
	return it.next()
}

// Get scans forward from the current position and returns the element whose
// 0-based position (counted from here) equals index. Elements up to and
// including it are consumed. Returns the zero value and false when the
// sequence ends first or index is negative.
//
// This is a linear scan, not random access.
func (it *Iter[T]) Get(index int) (T, bool) {
	it.mustLive("Get")
	var zero T
	if index < 0 {
		return zero, false
	}
	for i := 0; ; i++ {
		v, ok := it.next()
		if !ok {
			return zero, false
		}
		if i == index {
			return v, true
		}
	}
}

// Len returns [Unbounded] for an unbounded iterator without pulling anything.
// Otherwise it drains the iterator and returns the number of elements seen.
func (it *Iter[T]) Len() int {
	it.mustLive("Len")
	if it.unbounded {
		return Unbounded
	}
	n := 0
	for {
		if _, ok := it.next(); !ok {
			return n
		}
		n++
	}
}

// All returns a range-over-func view of the remaining elements. Breaking out
// of the loop leaves the iterator usable from the next element on.
func (it *Iter[T]) All() iter.Seq[T] {
	it.mustLive("All")
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stop releases resources held by the producer chain. It is a no-op for
// spent iterators and for producers that hold nothing.
func (it *Iter[T]) Stop() {
	if it.stop == nil {
		return
	}
	stop := it.stop
	it.stop = nil
	stop()
}

// Preview renders up to the first 11 elements as "index|  element" rows and
// appends "..." when more remain. It consumes what it renders, and at most
// one element past that, so it is safe on unbounded iterators.
//
// Iter does not implement [fmt.Stringer] on purpose: formatting it with %v
// must not consume it.
func (it *Iter[T]) Preview() string {
	it.mustLive("Preview")
	var b strings.Builder
	for i := 0; ; i++ {
		v, ok := it.next()
		if !ok {
			break
		}
		if i == previewRows {
			b.WriteString("...")
			break
		}
		fmt.Fprintf(&b, "%-3d|  %v\n", i, v)
	}
	return b.String()
}

// LogValue implements [slog.LogValuer]. It never pulls from the producer.
func (it *Iter[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("elem", reflect.TypeFor[T]().String()),
		slog.Bool("unbounded", it.unbounded),
		slog.Bool("spent", it.spent),
	)
}
