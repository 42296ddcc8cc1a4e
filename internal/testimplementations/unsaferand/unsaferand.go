package unsaferand

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math/big"
	mrand "math/rand"
	"time"
)

// UnsafeRand is a test implementation of io.Reader based on math/rand.Rand, with helpers for drawing big integers.
// The generated sequence is not cryptographically secure and should only be used for testing purposes.
// The underlying math.Rand is not safe for concurrent use.
type UnsafeRand struct {
	*mrand.Rand
}

var _ io.Reader = &UnsafeRand{}

// Initializes a new UnsafeRand that produces a deterministic randomness based on the given seed argument(s).
// The generated sequence is not cryptographically secure and should only be used for testing purposes.
// Deterministic behavior depends on the fmt.Sprintf("%#v", seedArgs...) representation of the passed arguments.
// Map iteration order is not guaranteed, so passing a map as a seed argument may lead to non-deterministic behavior.
func New(seedArgs ...any) *UnsafeRand {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%#v", seedArgs)

	seed := int64(h.Sum64())
	return &UnsafeRand{mrand.New(mrand.NewSource(seed))}
}

// Initializes a new UnsafeRand that produces non-deterministic randomness.
func NewNondeterministic() *UnsafeRand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return &UnsafeRand{mrand.New(mrand.NewSource(time.Now().UnixNano()))}
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	return &UnsafeRand{mrand.New(mrand.NewSource(seed))}
}

// Int returns a uniformly distributed integer in [0, max). It panics if max <= 0.
func (r *UnsafeRand) Int(max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		panic("unsaferand: max must be positive")
	}
	return new(big.Int).Rand(r.Rand, max)
}

// NonZeroInt returns a uniformly distributed integer in [1, max). It panics if max <= 1.
func (r *UnsafeRand) NonZeroInt(max *big.Int) *big.Int {
	if max.Cmp(big.NewInt(1)) <= 0 {
		panic("unsaferand: max must be greater than one")
	}
	n := new(big.Int).Sub(max, big.NewInt(1))
	n = r.Int(n)
	return n.Add(n, big.NewInt(1))
}

// Bytes returns n bytes of randomness.
func (r *UnsafeRand) Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b) // rand.Read never returns an error
	return b
}
