// Package catalog provides named constructors for common sequences, most of
// them infinite: counters, cycles, repeats, squares, Fibonacci, triangular
// numbers, primes, seeded random numbers and UUIDs.
//
// Every constructor returns a fresh [lazy.Iter] whose unbounded flag matches
// the sequence it produces, so bounding it with Take is required before
// calling a terminal operation:
//
//	xs, _ := catalog.Fibonacci(1, 1).Take(8).Collect()
//	// → [1 1 2 3 5 8 13 21]
//
// Arithmetic uses the element type's native operations; overflow is not
// detected.
package catalog
