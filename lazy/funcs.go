package lazy

import "fmt"

// This file contains the package-level transformations that change the
// element type. They move their input like the methods in transform.go and
// compose with method chains:
//
//	labels := lazy.Map(
//	    lazy.Of(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

// Map returns an Iter applying fn to each element of it. The unbounded flag
// is kept.
//
//	squares := lazy.Map(catalog.Count(0, 1), func(n int) int { return n * n })
func Map[T, U any](it *Iter[T], fn func(T) U) *Iter[U] {
	unbounded := it.unbounded
	next, stop := it.move("Map")
	return derive(func() (U, bool) {
		v, ok := next()
		if !ok {
			var zero U
			return zero, false
		}
		return fn(v), true
	}, unbounded, stop)
}

// FilterMap applies fn to each element and keeps the results for which fn
// reports true. The unbounded flag is kept.
//
//	nums := lazy.FilterMap(lazy.Of("1", "x", "3"), func(s string) (int, bool) {
//	    n, err := strconv.Atoi(s)
//	    return n, err == nil
//	}) // → 1, 3
func FilterMap[T, U any](it *Iter[T], fn func(T) (U, bool)) *Iter[U] {
	unbounded := it.unbounded
	next, stop := it.move("FilterMap")
	return derive(func() (U, bool) {
		for {
			v, ok := next()
			if !ok {
				var zero U
				return zero, false
			}
			if u, keep := fn(v); keep {
				return u, true
			}
		}
	}, unbounded, stop)
}

// Enumerate pairs each element with a running index starting at start.
// The index is Pair.First and the element Pair.Second.
func Enumerate[T any](it *Iter[T], start int) *Iter[Pair[int, T]] {
	unbounded := it.unbounded
	next, stop := it.move("Enumerate")
	i := start
	return derive(func() (Pair[int, T], bool) {
		v, ok := next()
		if !ok {
			return Pair[int, T]{}, false
		}
		p := Pair[int, T]{First: i, Second: v}
		i++
		return p, true
	}, unbounded, stop)
}

// Zip pairs a and b element by element and stops at the shorter one. The
// result is unbounded only if both inputs are.
//
//	pairs := lazy.Zip(lazy.Of("a", "b", "c"), catalog.Count(1, 1))
//	// → (a, 1), (b, 2), (c, 3)
func Zip[A, B any](a *Iter[A], b *Iter[B]) *Iter[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// ZipWith combines a and b element by element with fn and stops at the
// shorter one. The result is unbounded only if both inputs are.
func ZipWith[A, B, C any](a *Iter[A], b *Iter[B], fn func(A, B) C) *Iter[C] {
	a.mustLive("Zip")
	b.mustLive("Zip")
	if any(a) == any(b) {
		panic(fmt.Errorf("%w: Zip() got the same iterator twice", ErrConsumed))
	}
	unbounded := a.unbounded && b.unbounded
	nextA, stopA := a.move("Zip")
	nextB, stopB := b.move("Zip")
	done := false
	return derive(func() (C, bool) {
		var zero C
		if done {
			return zero, false
		}
		x, ok := nextA()
		if !ok {
			done = true
			return zero, false
		}
		y, ok := nextB()
		if !ok {
			done = true
			return zero, false
		}
		return fn(x, y), true
	}, unbounded, joinStops(stopA, stopB))
}

// ZipAll pairs it positionally with others, yielding one slice per position
// ordered as the inputs, and stops at the shortest input. The result is
// unbounded only if every input is: any bounded input bounds the result.
//
//	rows := lazy.ZipAll(lazy.Of(1, 2), lazy.Of(10, 20), lazy.Of(100, 200))
//	// → [1 10 100], [2 20 200]
func ZipAll[T any](it *Iter[T], others ...*Iter[T]) *Iter[[]T] {
	checkOperands("ZipAll", it, others)
	unbounded := it.unbounded
	next, stop := it.move("ZipAll")
	srcs := []func() (T, bool){next}
	stops := []func(){stop}
	for _, o := range others {
		unbounded = unbounded && o.unbounded
		n, s := o.move("ZipAll")
		srcs = append(srcs, n)
		stops = append(stops, s)
	}
	done := false
	return derive(func() ([]T, bool) {
		if done {
			return nil, false
		}
		row := make([]T, len(srcs))
		for i, src := range srcs {
			v, ok := src()
			if !ok {
				done = true
				return nil, false
			}
			row[i] = v
		}
		return row, true
	}, unbounded, joinStops(stops...))
}
