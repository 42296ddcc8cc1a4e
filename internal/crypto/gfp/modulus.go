package gfp

import (
	"fmt"
	"math/big"

	"filippo.io/bigmod"
)

// Modulus is an odd modulus greater than one, held both as a constant-time bigmod.Modulus and as a big.Int.
type Modulus struct {
	value *bigmod.Modulus
	n     *big.Int
}

// NewModulus returns the Modulus for n. The value must be odd and greater than one.
func NewModulus(n *big.Int) (*Modulus, error) {
	if n.Sign() <= 0 || n.Bit(0) == 0 || n.Cmp(big.NewInt(1)) == 0 {
		return nil, fmt.Errorf("%w: modulus must be odd and greater than one", ErrInvalidParameters)
	}
	m, err := bigmod.NewModulus(n.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}
	return &Modulus{m, new(big.Int).Set(n)}, nil
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid input; value must represent an odd natural number greater than one, in decimal or 0x-prefixed hex.
func MustModulus(value string) *Modulus {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		panic("invalid modulus value: " + value)
	}
	m, err := NewModulus(n)
	if err != nil {
		panic("invalid modulus value: " + value + ", error: " + err.Error())
	}
	return m
}

func (m *Modulus) Equal(other *Modulus) bool {
	if m == other {
		return true
	}
	// bigmod compares equally sized values only
	return m.Size() == other.Size() && m.value.Nat().Equal(other.value.Nat()) == 1
}

// Size returns the length of the modulus in bytes.
func (m *Modulus) Size() int {
	return m.value.Size()
}

// BitLen returns the length of the modulus in bits.
func (m *Modulus) BitLen() int {
	return m.value.BitLen()
}

// Bytes returns the big-endian encoding of the modulus, m.Size() bytes long.
func (m *Modulus) Bytes() []byte {
	return m.value.Nat().Bytes(m.value)
}

// Int returns a copy of the modulus.
func (m *Modulus) Int() *big.Int {
	return new(big.Int).Set(m.n)
}

// Exp sets z = x^e mod m and returns z. The exponent e is a big-endian byte string. The exponentiation runs in
// constant time with respect to x; x must be in [0, m).
func (m *Modulus) Exp(z, x *big.Int, e []byte) *big.Int {
	t, err := bigmod.NewNat().SetBytes(x.Bytes(), m.value)
	if err != nil {
		panic(fmt.Sprintf("gfp: exponentiation base out of range: %v", err))
	}
	t.Exp(t, e, m.value)
	return z.SetBytes(t.Bytes(m.value))
}
