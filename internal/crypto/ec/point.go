// Package ec implements points of short Weierstrass curves over GF(p) in Jacobian coordinates.
//
// A Point (X, Y, Z) represents the affine point (X/Z², Y/Z³); the identity is Z = 0. Coordinates are held in the
// representation form of the point's gfp.Curve. Operations follow the receiver convention of filippo.io/nistec:
// v.Add(p, q) sets v = p + q and returns v, and the receiver may alias any of the operands.
package ec

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smartcontractkit/ecgfp/internal/codec"
	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
)

// Point is a curve point in Jacobian coordinates. A Point exclusively owns its coordinates; it must not be copied
// by value, use Clone or Set.
type Point struct {
	curve   *gfp.Curve
	x, y, z gfp.Element
}

var _ codec.Codec[*Point] = &Point{}

// NewIdentity returns the identity (point at infinity) of curve c.
func NewIdentity(c *gfp.Curve) *Point {
	return new(Point).setIdentity(c)
}

// NewPoint returns the affine point (x, y) of curve c. Both coordinates must be in [1, p-1]. NewPoint does not
// check the curve equation; use OnTheCurve for points from untrusted sources, or Decode.
func NewPoint(c *gfp.Curve, x, y *big.Int) (*Point, error) {
	if !inRange(c, x) {
		return nil, fmt.Errorf("%w: x", ErrCoordinateRange)
	}
	if !inRange(c, y) {
		return nil, fmt.Errorf("%w: y", ErrCoordinateRange)
	}
	v := &Point{curve: c}
	c.ToRep(&v.x, x)
	c.ToRep(&v.y, y)
	v.z.Set(c.One())
	return v, nil
}

func inRange(c *gfp.Curve, x *big.Int) bool {
	return x.Sign() > 0 && x.Cmp(c.P()) < 0
}

func (v *Point) setIdentity(c *gfp.Curve) *Point {
	v.curve = c
	v.x.SetZero()
	v.y.Set(c.One())
	v.z.SetZero()
	return v
}

// v.Curve() returns the curve context of v.
func (v *Point) Curve() *gfp.Curve {
	return v.curve
}

func (v *Point) IsNil() bool {
	return v == nil
}

// v.IsIdentity() reports whether v is the point at infinity.
func (v *Point) IsIdentity() bool {
	return v.z.IsZero()
}

// v.IsAffine() reports whether v is held with Z = 1.
func (v *Point) IsAffine() bool {
	return v.z.Equal(v.curve.One())
}

// v.New() returns the identity of v's curve.
func (v *Point) New() *Point {
	return NewIdentity(v.curve)
}

// v.Clone() returns a copy of v.
func (v *Point) Clone() *Point {
	return new(Point).Set(v)
}

// v.Set(u) sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	v.curve = u.curve
	v.x.Set(&u.x)
	v.y.Set(&u.y)
	v.z.Set(&u.z)
	return v
}

// v.Negate(p) sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.Set(p)
	if !v.IsIdentity() {
		p.curve.Neg(&v.y, &v.y)
	}
	return v
}

// v.Equal(u) reports whether v and u represent the same point. The comparison cross-multiplies the coordinates, so
// it does not depend on the projective scaling of either point.
func (v *Point) Equal(u *Point) bool {
	c := requireSameCurve(v, u)
	if v.IsIdentity() || u.IsIdentity() {
		return v.IsIdentity() == u.IsIdentity()
	}

	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var vzz, uzz, l, r gfp.Element
	c.Sqr(&vzz, &v.z, ws)
	c.Sqr(&uzz, &u.z, ws)

	// X1·Z2² = X2·Z1²
	c.Mul(&l, &v.x, &uzz, ws)
	c.Mul(&r, &u.x, &vzz, ws)
	if !l.Equal(&r) {
		return false
	}

	// Y1·Z2³ = Y2·Z1³
	c.Mul(&uzz, &uzz, &u.z, ws)
	c.Mul(&vzz, &vzz, &v.z, ws)
	c.Mul(&l, &v.y, &uzz, ws)
	c.Mul(&r, &u.y, &vzz, ws)
	return l.Equal(&r)
}

// v.Affine() returns the affine coordinates of v as plain integers, or ErrIdentity. v is not modified.
func (v *Point) Affine() (x, y *big.Int, err error) {
	if v.IsIdentity() {
		return nil, nil, ErrIdentity
	}
	if v.IsAffine() {
		return v.curve.FromRep(&v.x), v.curve.FromRep(&v.y), nil
	}
	a := v.Clone().ForceAffine()
	return a.curve.FromRep(&a.x), a.curve.FromRep(&a.y), nil
}

// v.AffineX() returns the affine x coordinate of v.
func (v *Point) AffineX() (*big.Int, error) {
	x, _, err := v.Affine()
	return x, err
}

// v.AffineY() returns the affine y coordinate of v.
func (v *Point) AffineY() (*big.Int, error) {
	_, y, err := v.Affine()
	return y, err
}

// v.OnTheCurve() reports whether v satisfies the curve equation. The check is done projectively,
// Y² = X³ + a·X·Z⁴ + b·Z⁶, so no inversion is needed. The identity is on the curve.
func (v *Point) OnTheCurve() bool {
	if v.IsIdentity() {
		return true
	}
	c := v.curve
	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var lhs, rhs, t gfp.Element
	c.Sqr(&lhs, &v.y, ws)
	c.Sqr(&rhs, &v.x, ws)
	c.Mul(&rhs, &rhs, &v.x, ws)

	if v.IsAffine() {
		if !c.AIsZero() {
			c.Mul(&t, c.A(), &v.x, ws)
			c.Add(&rhs, &rhs, &t)
		}
		c.Add(&rhs, &rhs, c.B())
		return lhs.Equal(&rhs)
	}

	var z2, z4 gfp.Element
	c.Sqr(&z2, &v.z, ws)
	c.Sqr(&z4, &z2, ws)
	if !c.AIsZero() {
		c.Mul(&t, c.A(), &v.x, ws)
		c.Mul(&t, &t, &z4, ws)
		c.Add(&rhs, &rhs, &t)
	}
	c.Mul(&t, &z4, &z2, ws)
	c.Mul(&t, &t, c.B(), ws)
	c.Add(&rhs, &rhs, &t)
	return lhs.Equal(&rhs)
}

// v.RandomizeRepresentation(rand) rescales v to (λ²X, λ³Y, λZ) for a random non-zero λ read from rand. The
// represented point does not change. The identity is left as is.
func (v *Point) RandomizeRepresentation(rand io.Reader) error {
	if v.IsIdentity() {
		return nil
	}
	c := v.curve

	// 128 extra bits keep λ statistically close to uniform.
	buf := make([]byte, c.ByteLen()+16)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return fmt.Errorf("failed to read randomness: %w", err)
	}
	pm1 := c.P()
	pm1.Sub(pm1, big.NewInt(1))
	k := new(big.Int).SetBytes(buf)
	k.Mod(k, pm1)
	k.Add(k, big.NewInt(1))

	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var l, l2, l3 gfp.Element
	c.ToRep(&l, k)
	c.Sqr(&l2, &l, ws)
	c.Mul(&l3, &l2, &l, ws)
	c.Mul(&v.x, &v.x, &l2, ws)
	c.Mul(&v.y, &v.y, &l3, ws)
	c.Mul(&v.z, &v.z, &l, ws)
	return nil
}

// String returns the affine coordinates of v in hexadecimal, for debugging only.
func (v *Point) String() string {
	x, y, err := v.Affine()
	if err != nil {
		return "(identity)"
	}
	return fmt.Sprintf("(0x%x, 0x%x)", x, y)
}

// MarshalTo writes the compressed encoding of v, length-prefixed, to the provided codec.Target.
func (v *Point) MarshalTo(target codec.Target) {
	target.WriteLengthPrefixedBytes(v.Encode(Compressed))
}

// UnmarshalFrom reads a point written by MarshalTo, sets it to v, and returns v. The receiver must carry the curve
// to decode on (e.g. from Group.Identity); invalid encodings panic, codec.Unmarshal turns the panic into an error.
func (v *Point) UnmarshalFrom(source codec.Source) *Point {
	if v.curve == nil {
		panic("point has no curve to decode on")
	}
	p, err := Decode(v.curve, source.ReadLengthPrefixedBytes())
	if err != nil {
		panic(err)
	}
	return v.Set(p)
}

// requireSameCurve returns the common curve of the points, and panics if they were created for different curves.
func requireSameCurve(p, q *Point) *gfp.Curve {
	if !p.curve.Equal(q.curve) {
		panic(fmt.Sprintf("points belong to different curves: %s and %s", p.curve.Name(), q.curve.Name()))
	}
	return p.curve
}
