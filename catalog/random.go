package catalog

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"github.com/hasbyte1/go-infiniter/lazy"
)

// SeedSize is the length in bytes of a [Random] seed.
const SeedSize = chacha20.KeySize

// Random returns an unbounded, deterministic stream of uint64 values read
// from the ChaCha20 keystream keyed by seed. The same seed always yields the
// same sequence.
func Random(seed [SeedSize]byte) *lazy.Iter[uint64] {
	nonce := make([]byte, chacha20.NonceSize)
	// Key and nonce have valid sizes, so construction cannot fail.
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		panic(err)
	}
	block := make([]byte, 64)
	off := len(block)
	return lazy.New(func() (uint64, bool) {
		if off == len(block) {
			clear(block)
			c.XORKeyStream(block, block)
			off = 0
		}
		v := binary.LittleEndian.Uint64(block[off:])
		off += 8
		return v, true
	}, lazy.WithUnbounded())
}

// RandomIntn maps [Random] onto [0, n). It panics if n is not positive.
func RandomIntn(seed [SeedSize]byte, n int) *lazy.Iter[int] {
	if n <= 0 {
		panic("catalog: RandomIntn n must be positive")
	}
	return lazy.Map(Random(seed), func(v uint64) int { return int(v % uint64(n)) })
}
