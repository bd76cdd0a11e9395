package catalog

import (
	"github.com/google/uuid"

	"github.com/hasbyte1/go-infiniter/lazy"
)

// UUIDs returns an unbounded stream of random (version 4) UUIDs.
func UUIDs() *lazy.Iter[uuid.UUID] {
	return lazy.New(func() (uuid.UUID, bool) {
		return uuid.New(), true
	}, lazy.WithUnbounded())
}
