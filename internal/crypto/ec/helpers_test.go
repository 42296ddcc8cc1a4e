package ec

import (
	"math/big"
	"testing"

	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
	"github.com/smartcontractkit/ecgfp/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/require"
)

func iterations(n int) int {
	if testing.Short() {
		return max(1, n/10)
	}
	return n
}

// randomPoint returns a uniformly random non-identity point of c in randomized projective representation.
func randomPoint(t *testing.T, rand *unsaferand.UnsafeRand, c *gfp.Curve) *Point {
	t.Helper()
	for {
		x := rand.NonZeroInt(c.P())
		y, err := decompress(c, x, uint(rand.Intn(2)))
		if err != nil || y.Sign() == 0 {
			continue
		}
		p, err := NewPoint(c, x, y)
		require.NoError(t, err)
		require.NoError(t, p.RandomizeRepresentation(rand))
		return p
	}
}

// randomScalar returns a random integer below order with a random bit length, so small and large scalars both occur.
func randomScalar(rand *unsaferand.UnsafeRand, order *big.Int) *big.Int {
	bits := 1 + rand.Intn(order.BitLen())
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if bound.Cmp(order) > 0 {
		bound.Set(order)
	}
	return rand.Int(bound)
}

// syntheticCurve returns a curve over p with random a (or a = 0) through a random point, and that point.
func syntheticCurve(t *testing.T, rand *unsaferand.UnsafeRand, p *big.Int, zeroA bool, opts ...gfp.Option) (*gfp.Curve, *Point) {
	t.Helper()
	x, y := rand.NonZeroInt(p), rand.NonZeroInt(p)
	a := big.NewInt(0)
	if !zeroA {
		a = rand.NonZeroInt(p)
	}

	// b = y² - x³ - a·x
	b := new(big.Int).Mul(y, y)
	b.Sub(b, new(big.Int).Exp(x, big.NewInt(3), nil))
	b.Sub(b, new(big.Int).Mul(a, x))
	b.Mod(b, p)

	c, err := gfp.NewCurve(p, a, b, opts...)
	require.NoError(t, err)
	pt, err := NewPoint(c, x, y)
	require.NoError(t, err)
	require.True(t, pt.OnTheCurve())
	return c, pt
}

// affineDouble computes 2·(x, y) with the textbook affine formula.
func affineDouble(c *gfp.Curve, x, y *big.Int) (*big.Int, *big.Int) {
	p := c.P()
	a := c.FromRep(c.A())
	num := new(big.Int).Mul(x, x)
	num.Mul(num, big.NewInt(3)).Add(num, a)
	den := new(big.Int).Lsh(y, 1)
	return affineFinish(p, num, den, x, x, y)
}

// affineAdd computes (x1, y1) + (x2, y2) for x1 != x2 with the textbook affine formula.
func affineAdd(c *gfp.Curve, x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p := c.P()
	num := new(big.Int).Sub(y2, y1)
	den := new(big.Int).Sub(x2, x1)
	return affineFinish(p, num, den, x1, x2, y1)
}

func affineFinish(p, num, den, x1, x2, y1 *big.Int) (*big.Int, *big.Int) {
	den.Mod(den, p)
	l := new(big.Int).ModInverse(den, p)
	l.Mul(l, num).Mod(l, p)

	x3 := new(big.Int).Mul(l, l)
	x3.Sub(x3, x1).Sub(x3, x2).Mod(x3, p)
	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, l).Sub(y3, y1).Mod(y3, p)
	return x3, y3
}

func requireAffine(t *testing.T, p *Point, x, y *big.Int) {
	t.Helper()
	px, py, err := p.Affine()
	require.NoError(t, err)
	require.Equal(t, 0, x.Cmp(px), "x: expected %x, got %x", x, px)
	require.Equal(t, 0, y.Cmp(py), "y: expected %x, got %x", y, py)
}

func mustHex(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok)
	return n
}
