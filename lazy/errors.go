package lazy

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (or panicked with) by Iter operations.
//
// Use [errors.Is] for comparisons:
//
//	xs, err := it.Collect()
//	if errors.Is(err, lazy.ErrUnbounded) {
//	    // bound the iterator with Take first
//	}
var (
	// ErrUnbounded is matched by every [UnboundedError]. It is returned by
	// finite-only operations called on an iterator marked unbounded.
	ErrUnbounded = errors.New("lazy: operation requires a bounded iterator")

	// ErrConsumed is the panic payload when an iterator is used after its
	// producer was moved into a derived iterator.
	ErrConsumed = errors.New("lazy: iterator already consumed by a derived iterator")
)

// UnboundedError is returned when a finite-only operation such as
// [Iter.Collect], [Sum] or [Sort] is invoked on an unbounded iterator.
// The check happens before any element is pulled.
type UnboundedError struct {
	// Op is the name of the refused operation, e.g. "Collect".
	Op string
}

func (e *UnboundedError) Error() string {
	return fmt.Sprintf("lazy: cannot call %s() on an unbounded iterator; use .Take(n).%s() first to limit it", e.Op, e.Op)
}

// Unwrap makes errors.Is(err, ErrUnbounded) report true.
func (e *UnboundedError) Unwrap() error { return ErrUnbounded }
