package ec

import "github.com/smartcontractkit/ecgfp/internal/crypto/gfp"

// v.ForceAffine() rescales v to Z = 1 with a single field inversion, and returns v. The identity is unchanged.
func (v *Point) ForceAffine() *Point {
	if v.IsIdentity() || v.IsAffine() {
		return v
	}
	c := v.curve
	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	var zInv gfp.Element
	c.Invert(&zInv, &v.z, ws)
	v.applyZInv(&zInv, ws)
	return v
}

// applyZInv sets v = (X/Z², Y/Z³, 1) given zInv = 1/Z.
func (v *Point) applyZInv(zInv *gfp.Element, ws *gfp.Workspace) {
	c := v.curve
	var zInv2 gfp.Element
	c.Sqr(&zInv2, zInv, ws)
	c.Mul(&v.x, &v.x, &zInv2, ws)
	c.Mul(&zInv2, &zInv2, zInv, ws)
	c.Mul(&v.y, &v.y, &zInv2, ws)
	v.z.Set(c.One())
}

// ForceAllAffine rescales all points to Z = 1 using Montgomery's simultaneous inversion: one field inversion and
// three multiplications per point. Identities are skipped. The points must be distinct and belong to the same curve.
func ForceAllAffine(points []*Point) {
	if len(points) <= 1 {
		for _, p := range points {
			p.ForceAffine()
		}
		return
	}

	c := points[0].curve
	for _, p := range points[1:] {
		requireSameCurve(points[0], p)
	}
	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	// prefix[i] = Z0·Z1·…·Zi, where identities contribute a factor of one.
	prefix := make([]gfp.Element, len(points))
	for i, p := range points {
		z := &p.z
		if p.IsIdentity() {
			z = c.One()
		}
		if i == 0 {
			prefix[0].Set(z)
		} else {
			c.Mul(&prefix[i], &prefix[i-1], z, ws)
		}
	}

	var inv, zInv gfp.Element
	c.Invert(&inv, &prefix[len(points)-1], ws)
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		if p.IsIdentity() {
			continue
		}
		// inv = 1/(Z0·…·Zi) here.
		if i > 0 {
			c.Mul(&zInv, &inv, &prefix[i-1], ws)
			c.Mul(&inv, &inv, &p.z, ws)
		} else {
			zInv.Set(&inv)
		}
		p.applyZInv(&zInv, ws)
	}
}
