// Package streams connects [lazy.Iter] to luigi sources and sinks.
//
// A luigi.Source is already pull based, so it maps directly onto an Iter's
// producer. Pump goes the other way and pours a bounded Iter into a sink.
package streams

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"

	"github.com/hasbyte1/go-infiniter/lazy"
)

// FromSource returns an Iter pulling from src with ctx. The sequence ends at
// luigi's end-of-stream marker. Any other error also ends it and is reported
// by the returned function, which returns nil after a clean end.
//
// The Iter is bounded unless opts say otherwise; pass [lazy.WithUnbounded]
// for live sources that never send end-of-stream.
func FromSource(ctx context.Context, src luigi.Source, opts ...lazy.Option) (*lazy.Iter[any], func() error) {
	var srcErr error
	done := false
	it := lazy.New(func() (any, bool) {
		if done {
			return nil, false
		}
		v, err := src.Next(ctx)
		if err != nil {
			done = true
			if !luigi.IsEOS(err) {
				srcErr = errors.Wrap(err, "streams: source failed")
			}
			return nil, false
		}
		return v, true
	}, opts...)
	return it, func() error { return srcErr }
}

// Typed converts the elements of an Iter produced by [FromSource] to T.
// Elements of another type are skipped.
func Typed[T any](it *lazy.Iter[any]) *lazy.Iter[T] {
	return lazy.FilterMap(it, func(v any) (T, bool) {
		t, ok := v.(T)
		return t, ok
	})
}

// Pump pours every element of it into sink and closes the sink. Like the
// other finite-only operations it refuses an unbounded iterator with a
// [lazy.UnboundedError] before pulling anything. It stops early when ctx is
// done or the sink rejects an element; the sink is left open in that case,
// and ctx is checked before each pull so no element is lost on cancellation.
func Pump[T any](ctx context.Context, it *lazy.Iter[T], sink luigi.Sink) error {
	if it.IsUnbounded() {
		return &lazy.UnboundedError{Op: "Pump"}
	}
	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "streams: pump interrupted")
		}
		v, ok := it.Next()
		if !ok {
			break
		}
		if err := sink.Pour(ctx, v); err != nil {
			return errors.Wrap(err, "streams: error pouring into sink")
		}
	}
	return errors.Wrap(sink.Close(), "streams: error closing sink")
}
