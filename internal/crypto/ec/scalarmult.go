package ec

import (
	"fmt"
	"math/big"
)

// v.ScalarMult(k, p) sets v = k·p, and returns v. Negative k multiplies by |k| and negates the result.
func (v *Point) ScalarMult(k *big.Int, p *Point) *Point {
	return v.scalarMult(k, p, k.BitLen())
}

// scalarMult runs a Montgomery ladder over the low bits bits of |k|. Every bit costs one addition and one doubling,
// independent of its value; bits above the length of |k| are zero and leave the result unchanged.
func (v *Point) scalarMult(k *big.Int, p *Point, bits int) *Point {
	if debugChecks && !p.OnTheCurve() {
		panic(fmt.Sprintf("scalar multiplication input is not on %s", p.curve.Name()))
	}
	scalarMults.WithLabelValues(p.curve.Name()).Inc()

	e := new(big.Int).Abs(k)
	bits = max(bits, e.BitLen())

	// r[1] - r[0] = p throughout.
	r := [2]*Point{NewIdentity(p.curve), p.Clone()}
	for i := bits - 1; i >= 0; i-- {
		b := e.Bit(i)
		r[1-b].Add(r[0], r[1])
		r[b].Double(r[b])
	}

	if k.Sign() < 0 {
		r[0].Negate(r[0])
	}
	if debugChecks && !r[0].OnTheCurve() {
		panic(fmt.Sprintf("scalar multiplication result is not on %s", p.curve.Name()))
	}
	return v.Set(r[0])
}
