// Package lazy provides [Iter], a generic wrapper that turns any pull-based
// source, finite or infinite, into a chainable lazy pipeline.
//
// # Overview
//
//	primes := catalog.Primes().
//	    Filter(func(p int) bool { return p%10 == 3 }).
//	    Take(4)
//	xs, _ := primes.Collect() // → [3 13 23 43]
//
// Transformations (Map, Filter, Chain, Zip, Take, ...) return a new Iter
// without evaluating anything. Terminal operations (Collect, Sum, Sort, ...)
// drive evaluation.
//
// # Bounded and unbounded iterators
//
// Each Iter carries a flag stating that it is known to never end. Catalog
// generators such as [github.com/hasbyte1/go-infiniter/catalog.Count] set it;
// plain wrapping does not. The flag is propagated, never detected:
//
//   - Map, Filter, FilterMap, Enumerate, Skip, StepBy and Inspect keep it.
//   - Take and TakeWhile clear it.
//   - Chain is unbounded if any input is.
//   - Zip and ZipAll are unbounded only if every input is.
//
// Terminal operations return an [UnboundedError] before pulling a single
// element when the flag is set:
//
//	_, err := catalog.Count(0, 1).Collect()
//	errors.Is(err, lazy.ErrUnbounded) // true
//	xs, _ := catalog.Count(0, 1).Take(3).Collect() // → [0 1 2]
//
// # Single pass and ownership
//
// An Iter can be walked once. Transformations move the producer into the
// returned Iter, and reusing the spent receiver panics with [ErrConsumed]
// rather than silently continuing from an arbitrary position.
//
// # Arithmetic
//
// Go has no operator overloading, so [Add], [Sub], [Mul] and [Div] take an
// [Operand]: another Iter (zipped, then combined elementwise) or a [Scalar]
// (applied to every element):
//
//	lazy.Add(lazy.Of(1, 2, 3), lazy.Of(10, 20, 30)) // → 11, 22, 33
//	lazy.Mul(lazy.Of(1, 2, 3), lazy.Scalar(2))       // → 2, 4, 6
//
// # Concurrency
//
// Evaluation is synchronous and driven by the consumer. An Iter must not be
// shared between goroutines.
package lazy
