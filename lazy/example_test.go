package lazy_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-infiniter/catalog"
	"github.com/hasbyte1/go-infiniter/lazy"
)

func ExampleOf() {
	xs, _ := lazy.Of(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 }).
		Collect()
	fmt.Println(xs)
	// Output: [2 4 6]
}

func ExampleIter_Take() {
	xs, _ := catalog.Count(10, 5).Take(4).Collect()
	fmt.Println(xs)
	// Output: [10 15 20 25]
}

func ExampleIter_Collect_unbounded() {
	_, err := catalog.Count(0, 1).Collect()
	fmt.Println(errors.Is(err, lazy.ErrUnbounded))
	fmt.Println(err)
	// Output:
	// true
	// lazy: cannot call Collect() on an unbounded iterator; use .Take(n).Collect() first to limit it
}

func ExampleIter_Chain() {
	xs, _ := catalog.Range(3).Chain(catalog.Count(0, 1)).Take(5).Collect()
	fmt.Println(xs)
	// Output: [0 1 2 0 1]
}

func ExampleIter_Preview() {
	fmt.Print(catalog.Square(0).Preview())
	// Output:
	// 0  |  0
	// 1  |  1
	// 2  |  4
	// 3  |  9
	// 4  |  16
	// 5  |  25
	// 6  |  36
	// 7  |  49
	// 8  |  64
	// 9  |  81
	// 10 |  100
	// ...
}

func ExampleMap() {
	xs, _ := lazy.Map(lazy.Of(1, 2, 3), func(n int) string { return strconv.Itoa(n * n) }).Collect()
	fmt.Println(xs)
	// Output: [1 4 9]
}

func ExampleAdd() {
	sums, _ := lazy.Add(lazy.Of(1, 2, 3), lazy.Of(10, 20, 30)).Collect()
	doubled, _ := lazy.Mul(lazy.Of(1, 2, 3), lazy.Scalar(2)).Collect()
	fmt.Println(sums, doubled)
	// Output: [11 22 33] [2 4 6]
}

func ExampleZip() {
	pairs, _ := lazy.Zip(lazy.Of("a", "b", "c"), catalog.Count(1, 1)).Collect()
	fmt.Println(pairs)
	// Output: [(a, 1) (b, 2) (c, 3)]
}

func ExampleSum() {
	total, _ := lazy.Sum(catalog.TriangleNumbers().Take(4))
	fmt.Println(total)
	// Output: 20
}
