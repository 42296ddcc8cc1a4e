package ec

import "github.com/smartcontractkit/ecgfp/internal/crypto/gfp"

// Jacobian formulas from the Explicit-Formulas Database: add-1998-cmo-2, madd (Z2 = 1) and dbl-1998-cmo-2 with
// a specialized M term. All results are computed into locals before v is written, so v may alias the operands.

// v.Add(p, q) sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	c := requireSameCurve(p, q)
	if p.IsIdentity() {
		return v.Set(q)
	}
	if q.IsIdentity() {
		return v.Set(p)
	}

	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var z1z1, z2z2, u1, u2, s1, s2, h, r gfp.Element
	c.Sqr(&z1z1, &p.z, ws)
	c.Sqr(&z2z2, &q.z, ws)
	c.Mul(&u1, &p.x, &z2z2, ws)
	c.Mul(&u2, &q.x, &z1z1, ws)
	c.Mul(&s1, &p.y, &q.z, ws)
	c.Mul(&s1, &s1, &z2z2, ws)
	c.Mul(&s2, &q.y, &p.z, ws)
	c.Mul(&s2, &s2, &z1z1, ws)
	c.Sub(&h, &u2, &u1)
	c.Sub(&r, &s2, &s1)

	if h.IsZero() {
		if r.IsZero() {
			return v.Double(p)
		}
		return v.setIdentity(c)
	}

	var z3 gfp.Element
	c.Mul(&z3, &p.z, &q.z, ws)
	c.Mul(&z3, &z3, &h, ws)
	return v.finishAdd(c, &u1, &s1, &h, &r, &z3, ws)
}

// v.AddAffine(p, x, y) sets v = p + (x, y), and returns v. The second operand is an affine point given by its
// representation-form coordinates, which saves the Z2 multiplications of Add.
func (v *Point) AddAffine(p *Point, x, y *gfp.Element) *Point {
	c := p.curve
	if p.IsIdentity() {
		v.curve = c
		v.x.Set(x)
		v.y.Set(y)
		v.z.Set(c.One())
		return v
	}

	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var z1z1, u1, u2, s1, s2, h, r gfp.Element
	c.Sqr(&z1z1, &p.z, ws)
	u1.Set(&p.x)
	c.Mul(&u2, x, &z1z1, ws)
	s1.Set(&p.y)
	c.Mul(&s2, y, &p.z, ws)
	c.Mul(&s2, &s2, &z1z1, ws)
	c.Sub(&h, &u2, &u1)
	c.Sub(&r, &s2, &s1)

	if h.IsZero() {
		if r.IsZero() {
			return v.Double(p)
		}
		return v.setIdentity(c)
	}

	var z3 gfp.Element
	c.Mul(&z3, &p.z, &h, ws)
	return v.finishAdd(c, &u1, &s1, &h, &r, &z3, ws)
}

// finishAdd completes an addition from U1, S1, H = U2 - U1, R = S2 - S1 and the already computed Z3:
//
//	X3 = R² - H³ - 2·U1·H²
//	Y3 = R·(U1·H² - X3) - S1·H³
func (v *Point) finishAdd(c *gfp.Curve, u1, s1, h, r, z3 *gfp.Element, ws *gfp.Workspace) *Point {
	var hh, hhh, u1hh, x3, y3, t gfp.Element
	c.Sqr(&hh, h, ws)
	c.Mul(&hhh, &hh, h, ws)
	c.Mul(&u1hh, u1, &hh, ws)

	c.Sqr(&x3, r, ws)
	c.Sub(&x3, &x3, &hhh)
	c.Shl(&t, &u1hh, 1)
	c.Sub(&x3, &x3, &t)

	c.Sub(&y3, &u1hh, &x3)
	c.Mul(&y3, &y3, r, ws)
	c.Mul(&t, s1, &hhh, ws)
	c.Sub(&y3, &y3, &t)

	v.curve = c
	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(z3)
	return v
}

type doubleMode int

const (
	doubleGeneral doubleMode = iota // M = 3·X² + a·Z⁴
	doubleAMinus3                   // M = 3·(X - Z²)·(X + Z²)
	doubleAZero                     // M = 3·X²
)

func modeFor(c *gfp.Curve) doubleMode {
	switch {
	case c.AIsMinus3():
		return doubleAMinus3
	case c.AIsZero():
		return doubleAZero
	default:
		return doubleGeneral
	}
}

// v.Double(p) sets v = 2p, and returns v.
func (v *Point) Double(p *Point) *Point {
	return v.double(p, modeFor(p.curve))
}

// double computes
//
//	S = 4·X·Y², X' = M² - 2·S, Y' = M·(S - X') - 8·Y⁴, Z' = 2·Y·Z
//
// with M selected by mode. The small multiples are shifts, each reduced below p.
func (v *Point) double(p *Point, mode doubleMode) *Point {
	c := p.curve
	if p.IsIdentity() || p.y.IsZero() {
		return v.setIdentity(c)
	}

	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var m, t, zz gfp.Element
	switch mode {
	case doubleAMinus3:
		var u gfp.Element
		c.Sqr(&zz, &p.z, ws)
		c.Sub(&t, &p.x, &zz)
		c.Add(&u, &p.x, &zz)
		c.Mul(&m, &t, &u, ws)
		c.Shl(&t, &m, 1)
		c.Add(&m, &m, &t)
	case doubleAZero:
		c.Sqr(&m, &p.x, ws)
		c.Shl(&t, &m, 1)
		c.Add(&m, &m, &t)
	default:
		c.Sqr(&m, &p.x, ws)
		c.Shl(&t, &m, 1)
		c.Add(&m, &m, &t)
		c.Sqr(&zz, &p.z, ws)
		c.Sqr(&zz, &zz, ws)
		c.Mul(&t, c.A(), &zz, ws)
		c.Add(&m, &m, &t)
	}

	var yy, s, x3, y3, z3 gfp.Element
	c.Sqr(&yy, &p.y, ws)
	c.Mul(&s, &p.x, &yy, ws)
	c.Shl(&s, &s, 2)

	c.Sqr(&x3, &m, ws)
	c.Shl(&t, &s, 1)
	c.Sub(&x3, &x3, &t)

	c.Sub(&y3, &s, &x3)
	c.Mul(&y3, &y3, &m, ws)
	c.Sqr(&t, &yy, ws)
	c.Shl(&t, &t, 3)
	c.Sub(&y3, &y3, &t)

	c.Mul(&z3, &p.y, &p.z, ws)
	c.Shl(&z3, &z3, 1)

	v.curve = c
	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)
	return v
}

// v.Subtract(p, q) sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	return v.Add(p, new(Point).Negate(q))
}
