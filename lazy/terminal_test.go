package lazy_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-infiniter/catalog"
	"github.com/hasbyte1/go-infiniter/lazy"
)

// ─────────────────────────────────────────────────────────────────────────────
// Finite-only guard
// ─────────────────────────────────────────────────────────────────────────────

func TestTerminalOpsRefuseUnboundedBeforePulling(t *testing.T) {
	tests := []struct {
		op  string
		run func(it *lazy.Iter[int]) error
	}{
		{"Collect", func(it *lazy.Iter[int]) error { _, err := it.Collect(); return err }},
		{"Count", func(it *lazy.Iter[int]) error { _, err := it.Count(); return err }},
		{"Each", func(it *lazy.Iter[int]) error { return it.Each(func(int) {}) }},
		{"Sum", func(it *lazy.Iter[int]) error { _, err := lazy.Sum(it); return err }},
		{"Sort", func(it *lazy.Iter[int]) error { _, err := lazy.Sort(it, false); return err }},
		{"SortBy", func(it *lazy.Iter[int]) error {
			_, err := lazy.SortBy(it, func(n int) int { return -n }, false)
			return err
		}},
		{"SortFunc", func(it *lazy.Iter[int]) error {
			_, err := it.SortFunc(func(a, b int) int { return a - b }, true)
			return err
		}},
		{"Fold", func(it *lazy.Iter[int]) error {
			_, err := lazy.Fold(it, 0, func(a, b int) int { return a + b })
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			err := tt.run(untouchable(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, lazy.ErrUnbounded))

			var ue *lazy.UnboundedError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, tt.op, ue.Op)
			assert.Contains(t, err.Error(), tt.op+"()")
			assert.Contains(t, err.Error(), ".Take(n)."+tt.op+"()")
		})
	}
}

func TestRefusedIteratorStaysUsable(t *testing.T) {
	it := naturals()
	_, err := lazy.Sort(it, false)
	require.Error(t, err)
	assert.Equal(t, []int{0, 1}, collect(t, it.Take(2)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

func TestCollectPreservesOrder(t *testing.T) {
	in := []string{"q", "w", "e", "r", "t", "y"}
	assert.Equal(t, in, collect(t, lazy.FromSlice(in)))
}

func TestCount(t *testing.T) {
	n, err := catalog.Range(4).Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestEach(t *testing.T) {
	var b strings.Builder
	require.NoError(t, lazy.Of("a", "b", "c").Each(func(s string) { b.WriteString(s) }))
	assert.Equal(t, "abc", b.String())
}

func TestSum(t *testing.T) {
	total, err := lazy.Sum(catalog.Range(1, 101))
	require.NoError(t, err)
	assert.Equal(t, 5050, total)

	f, err := lazy.Sum(lazy.Of(0.5, 0.25))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, f, 1e-12)

	zero, err := lazy.Sum(lazy.Empty[int]())
	require.NoError(t, err)
	assert.Equal(t, 0, zero)
}

func TestSort(t *testing.T) {
	asc, err := lazy.Sort(lazy.Of(3, 1, 2), false)
	require.NoError(t, err)
	assert.False(t, asc.IsUnbounded())
	assert.Equal(t, []int{1, 2, 3}, collect(t, asc))

	desc, err := lazy.Sort(lazy.Of("b", "c", "a"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, collect(t, desc))
}

func TestSortMovesReceiver(t *testing.T) {
	it := lazy.Of(2, 1)
	_, err := lazy.Sort(it, false)
	require.NoError(t, err)
	assert.Panics(t, func() { it.Next() })
}

func TestSortByIsStable(t *testing.T) {
	words := lazy.Of("bb", "a", "cc", "d", "eee")
	sorted, err := lazy.SortBy(words, func(s string) int { return len(s) }, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "bb", "cc", "eee"}, collect(t, sorted))

	words = lazy.Of("bb", "a", "cc", "d", "eee")
	sorted, err = lazy.SortBy(words, func(s string) int { return len(s) }, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"eee", "bb", "cc", "a", "d"}, collect(t, sorted))
}

func TestFold(t *testing.T) {
	n, err := lazy.Fold(lazy.Of("a", "bb", "ccc"), 0, func(acc int, s string) int { return acc + len(s) })
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

func TestArithmeticWithIter(t *testing.T) {
	assert.Equal(t, []int{11, 22, 33}, collect(t, lazy.Add(lazy.Of(1, 2, 3), lazy.Of(10, 20, 30))))
	assert.Equal(t, []int{9, 18, 27}, collect(t, lazy.Sub(lazy.Of(10, 20, 30), lazy.Of(1, 2, 3))))
	assert.Equal(t, []int{10, 40}, collect(t, lazy.Mul(lazy.Of(1, 2, 3), lazy.Of(10, 20))))
	assert.Equal(t, []float64{0.5, 2}, collect(t, lazy.Div(lazy.Of(1.0, 8.0), lazy.Of(2.0, 4.0))))
}

func TestArithmeticWithScalar(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, collect(t, lazy.Mul(lazy.Of(1, 2, 3), lazy.Scalar(2))))
	assert.Equal(t, []int{6, 7}, collect(t, lazy.Add(lazy.Of(1, 2), lazy.Scalar(5))))
	assert.Equal(t, []int{0, 1}, collect(t, lazy.Sub(lazy.Of(1, 2), lazy.Scalar(1))))
	assert.Equal(t, []int{1, 3}, collect(t, lazy.Div(lazy.Of(3, 9), lazy.Scalar(3))))
}

func TestArithmeticOnUnbounded(t *testing.T) {
	evens := lazy.Add(catalog.Count(0, 1), catalog.Count(0, 1))
	assert.True(t, evens.IsUnbounded())
	assert.Equal(t, []int{0, 2, 4, 6}, collect(t, evens.Take(4)))

	scaled := lazy.Mul(catalog.Count(1, 1), lazy.Scalar(3))
	assert.True(t, scaled.IsUnbounded())

	mixed := lazy.Add(catalog.Count(0, 1), lazy.Of(5, 5))
	assert.False(t, mixed.IsUnbounded())
	assert.Equal(t, []int{5, 6}, collect(t, mixed))
}

func TestIntegerDivisionByZeroPropagates(t *testing.T) {
	it := lazy.Div(lazy.Of(1, 2), lazy.Of(1, 0))
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Panics(t, func() { it.Next() })
}
