// Constant time implementation of scalar arithmetic based on the bigmod package from Go's internal stdlib, exported
// via filippo.io/bigmod. Scalars are the multipliers of curve points, reduced modulo a group order.

package gfp

import (
	"io"
	"math/big"

	"filippo.io/bigmod"
	"github.com/smartcontractkit/ecgfp/internal/codec"
)

// Scalar represents a value modulo a group order. Scalars of different moduli are not compatible; executing any
// arithmetic operation on scalars with different moduli results in a panic.
type Scalar = *scalar

var _ codec.Codec[*scalar] = &scalar{}

type scalar struct {
	value   *bigmod.Nat
	modulus *Modulus
}

// NewScalar creates a new scalar with the given modulus.
// The value is initialized to zero.
func NewScalar(m *Modulus) Scalar {
	return &scalar{bigmod.NewNat().ExpandFor(m.value), m}
}

func (s *scalar) IsNil() bool {
	return s == nil
}

// x.Set(y) sets x = y, and returns the scalar x.
// This functions panics if x and y have different moduli.
func (x *scalar) Set(y Scalar) Scalar {
	requireEqualModulus(x, y)
	copy(x.value.Bits(), y.value.Bits())
	return x
}

// x.SetUint(y) sets x = y mod modulus, and returns x.
func (x *scalar) SetUint(y uint) Scalar {
	return x.SetBigInt(new(big.Int).SetUint64(uint64(y)))
}

// x.SetBigInt(y) sets x = y mod modulus, and returns x. Negative values are mapped to their non-negative residue.
// Non-constant time with respect to y.
func (x *scalar) SetBigInt(y *big.Int) Scalar {
	r := new(big.Int).Mod(y, x.modulus.n)
	if _, err := x.value.SetBytes(r.Bytes(), x.modulus.value); err != nil {
		panic("reduced scalar out of range: " + err.Error())
	}
	return x
}

// x.SetBytes(y) sets x to the scalar represented by the big-endian byte slice y, and returns x.
// If y does not represent a valid scalar (of the expected length, and smaller than x.modulus), SetBytes returns an
// error and the receiver is unchanged.
func (x *scalar) SetBytes(y []byte) (Scalar, error) {
	if _, err := x.value.SetBytes(y, x.modulus.value); err != nil {
		return nil, err
	}
	return x, nil
}

// x.SetRandom(rand) sets x to a random scalar and returns x. A constant number of bytes, 128 bits more than the
// modulus size, is read from rand, so the value is statistically close to uniform in {0, 1, ... modulus - 1} and
// deterministically derived from rand's output.
func (s *scalar) SetRandom(rand io.Reader) (Scalar, error) {
	rngBytes := make([]byte, s.modulus.Size()+16)
	if _, err := io.ReadFull(rand, rngBytes); err != nil {
		return nil, err
	}

	// Build a modulus that is larger than rngBytes (when interpreted as big-endian number).
	largeModBytes := make([]byte, len(rngBytes)+1)
	largeModBytes[0] = 1
	largeMod, err := bigmod.NewModulus(largeModBytes)
	if err != nil {
		return nil, err
	}

	t := bigmod.NewNat()
	if _, err := t.SetBytes(rngBytes, largeMod); err != nil {
		return nil, err
	}
	s.value.Mod(t, s.modulus.value)
	return s, nil
}

// x.Add(y) computes x = x + y (mod modulus), and returns x.
func (x *scalar) Add(y Scalar) Scalar {
	requireEqualModulus(x, y)
	x.value.Add(y.value, x.modulus.value)
	return x
}

// x.Subtract(y) computes x = x - y (mod modulus), and returns x.
func (x *scalar) Subtract(y Scalar) Scalar {
	requireEqualModulus(x, y)
	x.value.Sub(y.value, x.modulus.value)
	return x
}

// x.Multiply(y) computes x = x * y (mod modulus), and returns x.
func (x *scalar) Multiply(y Scalar) Scalar {
	requireEqualModulus(x, y)
	x.value.Mul(y.value, x.modulus.value)
	return x
}

// x.InverseVarTime() computes x = x^-1 and returns (x, true) if the inverse exists, or (nil, false) otherwise.
func (x *scalar) InverseVarTime() (Scalar, bool) {
	if _, ok := x.value.InverseVarTime(x.value, x.modulus.value); !ok {
		return nil, false
	}
	return x, true
}

// x.IsZero() returns true if x is zero, and false otherwise.
func (x *scalar) IsZero() bool {
	return x.value.IsZero() == 1
}

// Returns an independent copy of the scalar.
func (x *scalar) Clone() Scalar {
	return NewScalar(x.modulus).Set(x)
}

// Returns the modulus underlying the scalar.
func (x *scalar) Modulus() *Modulus {
	return x.modulus
}

// x.Bytes() returns the canonical big-endian encoding of x, x.Modulus().Size() bytes long.
func (x *scalar) Bytes() []byte {
	return x.value.Bytes(x.modulus.value)
}

// x.BigInt() returns the value of x as a big.Int.
func (x *scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// MarshalTo writes the canonical encoding of x to the provided codec.Target.
func (x *scalar) MarshalTo(target codec.Target) {
	target.WriteBytes(x.Bytes())
}

// UnmarshalFrom reads the canonical encoding of a scalar from the provided codec.Source, sets it to x, and returns x.
// The scalar x must have non-nil modulus, otherwise UnmarshalFrom panics.
func (x *scalar) UnmarshalFrom(source codec.Source) Scalar {
	b := source.ReadBytes(x.modulus.Size())
	if _, err := x.value.SetBytes(b, x.modulus.value); err != nil {
		panic(err)
	}
	return x
}

// x.Equal(y) tests two scalars for equality. Equality is defined as having the same value and the same modulus.
func (x *scalar) Equal(y Scalar) bool {
	return x == y || (x.modulus.Equal(y.modulus) && x.value.Equal(y.value) == 1)
}

// x.String() returns the decimal value of x. Non-constant time, for testing and logging only.
func (x *scalar) String() string {
	return x.BigInt().String()
}

func requireEqualModulus(x Scalar, y Scalar) {
	if !x.modulus.Equal(y.modulus) {
		panic("scalars have different moduli")
	}
}
