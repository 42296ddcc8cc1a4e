package ec

import (
	"math/big"
	"testing"

	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
	"github.com/smartcontractkit/ecgfp/internal/crypto/nist"
	"github.com/smartcontractkit/ecgfp/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/require"
)

// checkDoubleModes doubles p with every given mode and compares against the affine formula.
func checkDoubleModes(t *testing.T, p *Point, modes ...doubleMode) {
	t.Helper()
	px, py, err := p.Affine()
	require.NoError(t, err)
	x, y := affineDouble(p.curve, px, py)
	for _, mode := range modes {
		d := new(Point).double(p, mode)
		require.True(t, d.OnTheCurve(), "mode %d", mode)
		requireAffine(t, d, x, y)
	}
}

func TestDoubleModesOnNamedCurves(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			c := g.Curve()
			specialized := modeFor(c)
			require.NotEqual(t, doubleGeneral, specialized)
			for range iterations(200) {
				checkDoubleModes(t, randomPoint(t, rand, c), specialized, doubleGeneral)
			}
		})
	}
}

func TestDoubleModesOnSyntheticCurves(t *testing.T) {
	for _, pr := range nist.Primes {
		t.Run(pr.Name, func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			for _, opts := range [][]gfp.Option{nil, {gfp.WithGenericReduction()}} {
				for range iterations(20) {
					// general a
					c, P := syntheticCurve(t, rand, pr.P(), false, opts...)
					require.Equal(t, doubleGeneral, modeFor(c))
					require.NoError(t, P.RandomizeRepresentation(rand))
					checkDoubleModes(t, P, doubleGeneral)

					// a = 0
					c, P = syntheticCurve(t, rand, pr.P(), true, opts...)
					require.Equal(t, doubleAZero, modeFor(c))
					require.NoError(t, P.RandomizeRepresentation(rand))
					checkDoubleModes(t, P, doubleAZero, doubleGeneral)
				}
			}
		})
	}
}

func TestSyntheticCurveGroupLaws(t *testing.T) {
	rand := unsaferand.New(t.Name())
	for _, pr := range nist.Primes {
		c, A := syntheticCurve(t, rand, pr.P(), false)
		B := new(Point).Double(A)
		C := new(Point).Add(B, A)

		require.True(t, new(Point).Add(new(Point).Add(A, B), C).Equal(new(Point).Add(A, new(Point).Add(B, C))))
		require.True(t, new(Point).ScalarMult(big.NewInt(6), A).Equal(new(Point).Add(C, C)))
		require.True(t, new(Point).Subtract(C, B).Equal(A))
		require.Equal(t, pr.Name, nist.ByModulus(c.P()).Name)
	}
}
