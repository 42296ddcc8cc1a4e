package gfp

import "math/big"

// Element is a field element in the representation form of the Curve it was created for. Elements of different
// curves must not be mixed; the only way to cross between plain integers and Elements is Curve.ToRep and
// Curve.FromRep. The zero value is the element zero, in every representation.
//
// An Element must not be copied by value once used; pass pointers and use Set.
type Element struct {
	v big.Int
}

// Set sets z = x and returns z.
func (z *Element) Set(x *Element) *Element {
	z.v.Set(&x.v)
	return z
}

// SetZero sets z = 0 and returns z.
func (z *Element) SetZero() *Element {
	z.v.SetInt64(0)
	return z
}

// IsZero reports whether x is the element zero.
func (x *Element) IsZero() bool {
	return x.v.Sign() == 0
}

// Equal reports whether x and y hold the same representation. Both must belong to the same curve.
func (x *Element) Equal(y *Element) bool {
	return x.v.Cmp(&y.v) == 0
}

// String returns the representation value in hexadecimal, for debugging only.
func (x *Element) String() string {
	return "0x" + x.v.Text(16)
}
