package lazy

// Number is the set of element types that support elementwise arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Operand is the right-hand side of [Add], [Sub], [Mul] and [Div]: either
// another *Iter[T], combined position by position, or a [Scalar] applied to
// every element. The set is closed; no other implementations exist.
type Operand[T any] interface {
	combine(lhs *Iter[T], op func(a, b T) T) *Iter[T]
}

type scalar[T any] struct{ v T }

// Scalar wraps a single value as an [Operand].
//
//	doubled := lazy.Mul(lazy.Of(1, 2, 3), lazy.Scalar(2)) // → 2, 4, 6
func Scalar[T any](v T) Operand[T] { return scalar[T]{v: v} }

func (s scalar[T]) combine(lhs *Iter[T], op func(a, b T) T) *Iter[T] {
	return Map(lhs, func(x T) T { return op(x, s.v) })
}

func (it *Iter[T]) combine(lhs *Iter[T], op func(a, b T) T) *Iter[T] {
	return ZipWith(lhs, it, op)
}

// Add returns it + rhs elementwise. With an *Iter operand the result stops
// at the shorter input and is unbounded only if both are.
//
//	sums := lazy.Add(lazy.Of(1, 2, 3), lazy.Of(10, 20, 30)) // → 11, 22, 33
func Add[T Number](it *Iter[T], rhs Operand[T]) *Iter[T] {
	return rhs.combine(it, func(a, b T) T { return a + b })
}

// Sub returns it - rhs elementwise. See [Add].
func Sub[T Number](it *Iter[T], rhs Operand[T]) *Iter[T] {
	return rhs.combine(it, func(a, b T) T { return a - b })
}

// Mul returns it * rhs elementwise. See [Add].
func Mul[T Number](it *Iter[T], rhs Operand[T]) *Iter[T] {
	return rhs.combine(it, func(a, b T) T { return a * b })
}

// Div returns it / rhs elementwise. See [Add]. Integer division by zero
// panics when the offending element is pulled, as it would in plain Go.
func Div[T Number](it *Iter[T], rhs Operand[T]) *Iter[T] {
	return rhs.combine(it, func(a, b T) T { return a / b })
}
