package catalog

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-infiniter/lazy"
)

// Range returns a bounded arithmetic progression in the style of a for
// loop: Range(stop), Range(start, stop) or Range(start, stop, step). The
// stop value is excluded and step defaults to 1. A negative step counts
// down. It panics with [ErrInvalidRange] on a zero step or a wrong number of
// arguments.
//
//	catalog.Range(5)         // → 0, 1, 2, 3, 4
//	catalog.Range(10, 0, -3) // → 10, 7, 4, 1
func Range(args ...int) *lazy.Iter[int] {
	start, stop, step := 0, 0, 1
	switch len(args) {
	case 1:
		stop = args[0]
	case 2:
		start, stop = args[0], args[1]
	case 3:
		start, stop, step = args[0], args[1], args[2]
	default:
		panic(fmt.Errorf("%w: expected 1 to 3 arguments, got %d", ErrInvalidRange, len(args)))
	}
	if step == 0 {
		panic(fmt.Errorf("%w: step must not be zero", ErrInvalidRange))
	}
	remaining := rangeLen(start, stop, step)
	n := start
	return lazy.New(func() (int, bool) {
		if remaining == 0 {
			return 0, false
		}
		remaining--
		v := n
		n += step
		return v, true
	})
}

// rangeLen counts the elements of a range in unsigned arithmetic, so that
// ranges ending near the limits of int do not wrap around.
func rangeLen(start, stop, step int) uint {
	var dist, stride uint
	switch {
	case step > 0 && start < stop:
		dist, stride = uint(stop)-uint(start), uint(step)
	case step < 0 && start > stop:
		dist, stride = uint(start)-uint(stop), uint(0)-uint(step)
	default:
		return 0
	}
	n := dist / stride
	if dist%stride != 0 {
		n++
	}
	return n
}

// Count returns the unbounded progression start, start+step, start+2*step, ...
func Count[T lazy.Number](start, step T) *lazy.Iter[T] {
	n := start
	return lazy.New(func() (T, bool) {
		v := n
		n += step
		return v, true
	}, lazy.WithUnbounded())
}

// Cycle repeats seq forever. seq is ranged over again for every pass, so it
// must be restartable; wrap one-shot sources with the replay package first.
// A pass that yields nothing ends the cycle instead of spinning.
//
// Abandoned cycles hold an [iter.Pull] coroutine; call Stop on the returned
// iterator (or whatever it was moved into) to release it.
func Cycle[T any](seq iter.Seq[T]) *lazy.Iter[T] {
	return lazy.FromSeq(func(yield func(T) bool) {
		for {
			empty := true
			for v := range seq {
				empty = false
				if !yield(v) {
					return
				}
			}
			if empty {
				return
			}
		}
	}, lazy.WithUnbounded())
}

// CycleSlice repeats a copy of items forever. An empty slice yields nothing.
func CycleSlice[T any](items []T) *lazy.Iter[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	i := 0
	return lazy.New(func() (T, bool) {
		if len(dst) == 0 {
			var zero T
			return zero, false
		}
		v := dst[i]
		i = (i + 1) % len(dst)
		return v, true
	}, lazy.WithUnbounded())
}

// Repeat yields v forever.
func Repeat[T any](v T) *lazy.Iter[T] {
	return lazy.New(func() (T, bool) { return v, true }, lazy.WithUnbounded())
}

// RepeatN yields v exactly times times. The result is bounded; times <= 0
// yields nothing.
func RepeatN[T any](v T, times int) *lazy.Iter[T] {
	return Repeat(v).Take(times)
}

// Square returns the unbounded squares of start, start+1, start+2, ...
//
//	catalog.Square(0) // → 0, 1, 4, 9, ...
func Square[T lazy.Number](start T) *lazy.Iter[T] {
	return Count(start, 1).Map(func(n T) T { return n * n })
}

// Fibonacci returns the unbounded sequence a, b, a+b, ... built with the
// two-term recurrence.
//
//	catalog.Fibonacci(1, 1) // → 1, 1, 2, 3, 5, 8, ...
func Fibonacci[T lazy.Number](a, b T) *lazy.Iter[T] {
	return lazy.New(func() (T, bool) {
		v := a
		a, b = b, a+b
		return v, true
	}, lazy.WithUnbounded())
}

// TriangleNumbers returns the unbounded triangular numbers 1, 3, 6, 10, ...
// Each one is derived from the previous with a single addition.
func TriangleNumbers() *lazy.Iter[int] {
	n, total := 0, 0
	return lazy.New(func() (int, bool) {
		n++
		total += n
		return total, true
	}, lazy.WithUnbounded())
}

// Primes returns the unbounded primes in ascending order.
//
// After 2 only odd candidates are tested, each by trial division against the
// primes found so far up to its square root.
func Primes() *lazy.Iter[int] {
	var found []int
	candidate := 1
	return lazy.New(func() (int, bool) {
		if found == nil {
			found = []int{2}
			return 2, true
		}
		for {
			candidate += 2
			if isPrime(candidate, found) {
				found = append(found, candidate)
				return candidate, true
			}
		}
	}, lazy.WithUnbounded())
}

func isPrime(candidate int, known []int) bool {
	for _, p := range known {
		if p*p > candidate {
			return true
		}
		if candidate%p == 0 {
			return false
		}
	}
	return true
}
