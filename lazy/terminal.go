package lazy

import (
	"cmp"
	"slices"
)

// This file contains the finite-only (terminal) operations. Each one checks
// the unbounded flag before pulling anything and returns an [UnboundedError]
// naming itself when the flag is set.

func (it *Iter[T]) requireBounded(op string) error {
	it.mustLive(op)
	if it.unbounded {
		return &UnboundedError{Op: op}
	}
	return nil
}

// drain pulls every remaining element into a slice.
func (it *Iter[T]) drain() []T {
	out := make([]T, 0)
	for {
		v, ok := it.next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Collect drains the iterator into a slice, preserving iteration order.
func (it *Iter[T]) Collect() ([]T, error) {
	if err := it.requireBounded("Collect"); err != nil {
		return nil, err
	}
	return it.drain(), nil
}

// Count drains the iterator and returns the number of elements. Unlike
// [Iter.Len] it refuses unbounded iterators with an error.
func (it *Iter[T]) Count() (int, error) {
	if err := it.requireBounded("Count"); err != nil {
		return 0, err
	}
	return it.Len(), nil
}

// Each drains the iterator, calling fn with every element.
func (it *Iter[T]) Each(fn func(T)) error {
	if err := it.requireBounded("Each"); err != nil {
		return err
	}
	for {
		v, ok := it.next()
		if !ok {
			return nil
		}
		fn(v)
	}
}

// SortFunc drains the iterator and returns a new bounded Iter over its
// elements ordered by compare (negative when a sorts before b). Equal elements
// keep their relative order, also when reverse is set. The receiver is moved.
//
// For ordered element types, the package-level [Sort] needs no comparator.
func (it *Iter[T]) SortFunc(compare func(a, b T) int, reverse bool) (*Iter[T], error) {
	return it.sort("SortFunc", compare, reverse)
}

func (it *Iter[T]) sort(op string, compare func(a, b T) int, reverse bool) (*Iter[T], error) {
	if err := it.requireBounded(op); err != nil {
		return nil, err
	}
	items := it.drain()
	if reverse {
		slices.SortStableFunc(items, func(a, b T) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(items, compare)
	}
	_, stop := it.move(op)
	return derive(FromSlice(items).next, false, stop), nil
}

// Sort drains it and returns a new bounded Iter over its elements in
// ascending order, or descending when reverse is set.
//
//	sorted, _ := lazy.Sort(lazy.Of(3, 1, 2), false) // → 1, 2, 3
func Sort[T cmp.Ordered](it *Iter[T], reverse bool) (*Iter[T], error) {
	return it.sort("Sort", cmp.Compare[T], reverse)
}

// SortBy is like [Sort] but orders elements by the key extracted by key.
func SortBy[T any, K cmp.Ordered](it *Iter[T], key func(T) K, reverse bool) (*Iter[T], error) {
	return it.sort("SortBy", func(a, b T) int { return cmp.Compare(key(a), key(b)) }, reverse)
}

// Fold drains it, combining the elements into a single value of type U.
//
//	total, _ := lazy.Fold(lazy.Of("a", "bb"), 0, func(n int, s string) int { return n + len(s) })
func Fold[T, U any](it *Iter[T], initial U, fn func(U, T) U) (U, error) {
	if err := it.requireBounded("Fold"); err != nil {
		return initial, err
	}
	acc := initial
	for {
		v, ok := it.next()
		if !ok {
			return acc, nil
		}
		acc = fn(acc, v)
	}
}

// Sum drains it and adds up its elements. An empty iterator sums to zero.
func Sum[T Number](it *Iter[T]) (T, error) {
	var zero T
	if err := it.requireBounded("Sum"); err != nil {
		return zero, err
	}
	total := zero
	for {
		v, ok := it.next()
		if !ok {
			return total, nil
		}
		total += v
	}
}
