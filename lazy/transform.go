package lazy

import "fmt"

// This file contains the type-preserving lazy transformations. Each one moves
// the receiver's producer into the returned Iter; see [Iter] for ownership.
// Type-changing transformations ([Map], [FilterMap], [Enumerate], [Zip],
// [ZipAll]) are package-level functions because methods cannot introduce type
// parameters.

// Map returns an Iter applying fn to each element. The unbounded flag is
// kept.
//
// For a Map that changes the element type, use the package-level [Map].
func (it *Iter[T]) Map(fn func(T) T) *Iter[T] { return Map(it, fn) }

// Filter returns an Iter keeping only elements for which pred holds.
//
// The unbounded flag is kept even when pred is selective: a filtered infinite
// sequence cannot be proven finite.
func (it *Iter[T]) Filter(pred func(T) bool) *Iter[T] {
	unbounded := it.unbounded
	next, stop := it.move("Filter")
	return derive(func() (T, bool) {
		for {
			v, ok := next()
			if !ok || pred(v) {
				return v, ok
			}
		}
	}, unbounded, stop)
}

// Reject is the complement of [Iter.Filter].
func (it *Iter[T]) Reject(pred func(T) bool) *Iter[T] {
	return it.Filter(func(v T) bool { return !pred(v) })
}

// Inspect calls fn with every element as it passes through, for logging or
// debugging, without changing the sequence.
func (it *Iter[T]) Inspect(fn func(T)) *Iter[T] {
	unbounded := it.unbounded
	next, stop := it.move("Inspect")
	return derive(func() (T, bool) {
		v, ok := next()
		if ok {
			fn(v)
		}
		return v, ok
	}, unbounded, stop)
}

// Chain returns an Iter yielding the receiver's elements followed by those
// of each other iterator in order. The result is unbounded if any input is.
//
// Every argument is moved, so an iterator cannot be chained onto itself.
// Spent or repeated operands panic with [ErrConsumed] before anything moves.
func (it *Iter[T]) Chain(others ...*Iter[T]) *Iter[T] {
	checkOperands("Chain", it, others)
	unbounded := it.unbounded
	next, stop := it.move("Chain")
	srcs := []func() (T, bool){next}
	stops := []func(){stop}
	for _, o := range others {
		unbounded = unbounded || o.unbounded
		n, s := o.move("Chain")
		srcs = append(srcs, n)
		stops = append(stops, s)
	}
	cur := 0
	return derive(func() (T, bool) {
		for cur < len(srcs) {
			if v, ok := srcs[cur](); ok {
				return v, true
			}
			cur++
		}
		var zero T
		return zero, false
	}, unbounded, joinStops(stops...))
}

// Take returns an Iter over at most the first n elements. The result is
// always bounded, even when the receiver is not. It never pulls element n+1.
func (it *Iter[T]) Take(n int) *Iter[T] {
	next, stop := it.move("Take")
	taken := 0
	return derive(func() (T, bool) {
		if taken >= n {
			var zero T
			return zero, false
		}
		taken++
		return next()
	}, false, stop)
}

// TakeWhile returns an Iter yielding elements until pred first fails; the
// failing element is dropped. The result is marked bounded.
//
// Caveat: that flag is a policy, not a proof. If pred never fails on a truly
// infinite source, finite-only operations on the result will not return.
func (it *Iter[T]) TakeWhile(pred func(T) bool) *Iter[T] {
	next, stop := it.move("TakeWhile")
	done := false
	return derive(func() (T, bool) {
		var zero T
		if done {
			return zero, false
		}
		v, ok := next()
		if !ok || !pred(v) {
			done = true
			return zero, false
		}
		return v, true
	}, false, stop)
}

// Skip returns an Iter without its first n elements. They are discarded on
// the first pull, not when Skip is called. The unbounded flag is kept.
func (it *Iter[T]) Skip(n int) *Iter[T] {
	unbounded := it.unbounded
	next, stop := it.move("Skip")
	skipped := false
	return derive(func() (T, bool) {
		if !skipped {
			skipped = true
			for i := 0; i < n; i++ {
				if v, ok := next(); !ok {
					return v, false
				}
			}
		}
		return next()
	}, unbounded, stop)
}

// StepBy returns an Iter yielding the first element and then every step-th
// element after it. It panics if step is not positive.
func (it *Iter[T]) StepBy(step int) *Iter[T] {
	if step < 1 {
		panic(fmt.Sprintf("lazy: StepBy step must be positive, got %d", step))
	}
	unbounded := it.unbounded
	next, stop := it.move("StepBy")
	first := true
	return derive(func() (T, bool) {
		if first {
			first = false
			return next()
		}
		for i := 1; i < step; i++ {
			if v, ok := next(); !ok {
				return v, false
			}
		}
		return next()
	}, unbounded, stop)
}
