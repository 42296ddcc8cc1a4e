package ec

import (
	"math/big"
	"testing"

	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
	"github.com/smartcontractkit/ecgfp/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/require"
)

func TestGeneratorsOnCurve(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			G := g.Generator()
			require.True(t, G.OnTheCurve())
			require.True(t, G.IsAffine())
			require.Equal(t, g.curve.IsNIST(), g != Secp256k1)
		})
	}
}

func TestNISTCoefficients(t *testing.T) {
	// FIPS 186-4, Section D.1.2
	cases := map[*Group]string{
		P224: "b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4",
		P256: "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		P384: "b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef",
	}
	for g, b := range cases {
		require.Equal(t, 0, mustHex(t, b).Cmp(g.curve.FromRep(g.curve.B())), g.Name())
		require.True(t, g.curve.AIsMinus3(), g.Name())
	}
	require.True(t, Secp256k1.curve.AIsZero())
}

func TestOrderTimesGeneratorIsIdentity(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			n := g.Order().Int()
			require.True(t, new(Point).ScalarMult(n, g.Generator()).IsIdentity())

			nm1 := new(big.Int).Sub(n, big.NewInt(1))
			require.True(t, new(Point).ScalarMult(nm1, g.Generator()).Equal(new(Point).Negate(g.Generator())))
		})
	}
}

func TestP256DoubleGeneratorKnownAnswer(t *testing.T) {
	x := mustHex(t, "7CF27B188D034F7E8A52380304B51AC3C08969E277F21B35A60B48FC47669978")
	y := mustHex(t, "07775510DB8ED040293D9AC69F7430DBBA7DADE63CE982299E04B79D227873D1")

	requireAffine(t, new(Point).ScalarMult(big.NewInt(2), P256.Generator()), x, y)
	requireAffine(t, new(Point).Double(P256.Generator()), x, y)
	requireAffine(t, P256.ScalarBaseMult(P256.Scalar().SetUint(2)), x, y)
}

func TestGroupLaws(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			c := g.Curve()
			O := g.Identity()
			for range iterations(100) {
				A := randomPoint(t, rand, c)
				B := randomPoint(t, rand, c)
				C := randomPoint(t, rand, c)

				// A + O = A = O + A
				require.True(t, new(Point).Add(A, O).Equal(A))
				require.True(t, new(Point).Add(O, A).Equal(A))

				// A + (-A) = O
				require.True(t, new(Point).Add(A, new(Point).Negate(A)).IsIdentity())
				require.True(t, new(Point).Subtract(A, A).IsIdentity())

				// A + B = B + A
				AB := new(Point).Add(A, B)
				require.True(t, AB.Equal(new(Point).Add(B, A)))

				// (A + B) + C = A + (B + C)
				l := new(Point).Add(AB, C).ForceAffine()
				r := new(Point).Add(A, new(Point).Add(B, C)).ForceAffine()
				require.True(t, l.Equal(r))
				requireSameAffine(t, l, r)

				// 2A = A + A, also with a differently scaled copy of A
				A2 := A.Clone()
				require.NoError(t, A2.RandomizeRepresentation(rand))
				require.True(t, new(Point).Double(A).Equal(new(Point).Add(A, A)))
				require.True(t, new(Point).Double(A).Equal(new(Point).Add(A, A2)))

				// (A + B) - B = A
				require.True(t, new(Point).Subtract(AB, B).Equal(A))

				for _, p := range []*Point{AB, l, r} {
					require.True(t, p.OnTheCurve())
				}
			}
		})
	}
}

func requireSameAffine(t *testing.T, p, q *Point) {
	t.Helper()
	qx, qy, err := q.Affine()
	require.NoError(t, err)
	requireAffine(t, p, qx, qy)
}

func TestAddMatchesAffineFormula(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			c := g.Curve()
			for range iterations(50) {
				A, B := randomPoint(t, rand, c), randomPoint(t, rand, c)
				ax, ay, _ := A.Affine()
				bx, by, _ := B.Affine()

				x, y := affineAdd(c, ax, ay, bx, by)
				requireAffine(t, new(Point).Add(A, B), x, y)

				x, y = affineDouble(c, ax, ay)
				requireAffine(t, new(Point).Double(A), x, y)
			}
		})
	}
}

func TestAddAffine(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			c := g.Curve()
			for range iterations(50) {
				A := randomPoint(t, rand, c)
				B := randomPoint(t, rand, c).ForceAffine()

				require.True(t, new(Point).AddAffine(A, &B.x, &B.y).Equal(new(Point).Add(A, B)))
				require.True(t, new(Point).AddAffine(g.Identity(), &B.x, &B.y).Equal(B))

				// Mixed addition of a point to itself doubles, and of its negation gives the identity.
				Bc := B.Clone()
				require.NoError(t, Bc.RandomizeRepresentation(rand))
				require.True(t, new(Point).AddAffine(Bc, &B.x, &B.y).Equal(new(Point).Double(B)))
				negB := new(Point).Negate(B)
				require.True(t, new(Point).AddAffine(Bc, &negB.x, &negB.y).IsIdentity())
			}
		})
	}
}

func TestReceiverAliasing(t *testing.T) {
	rand := unsaferand.New(t.Name())
	c := P256.Curve()
	A, B := randomPoint(t, rand, c), randomPoint(t, rand, c)
	expected := new(Point).Add(A, B)

	a := A.Clone()
	require.True(t, a.Add(a, B).Equal(expected))
	b := B.Clone()
	require.True(t, b.Add(A, b).Equal(expected))

	d := A.Clone()
	require.True(t, d.Double(d).Equal(new(Point).Add(A, A)))
	require.True(t, d.Add(d, d).Equal(new(Point).ScalarMult(big.NewInt(4), A)))
}

func TestDoubleTwoTorsionAndIdentity(t *testing.T) {
	require.True(t, new(Point).Double(P256.Identity()).IsIdentity())

	// y² = x³ + x has the 2-torsion point (0, 0). NewPoint rejects zero coordinates, so it is built directly.
	c, err := gfp.NewCurve(P256.Curve().P(), big.NewInt(1), big.NewInt(0))
	require.NoError(t, err)
	T := &Point{curve: c}
	T.x.SetZero()
	T.y.SetZero()
	T.z.Set(c.One())
	require.True(t, T.OnTheCurve())
	require.True(t, new(Point).Double(T).IsIdentity())
}

func TestScalarMultOnCurveAndDistributive(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			c := g.Curve()
			n := g.Order().Int()
			count := 100
			if g == P256 {
				count = 1000
			}
			for range iterations(count) {
				k1, k2 := randomScalar(rand, n), randomScalar(rand, n)
				A, B := randomPoint(t, rand, c), randomPoint(t, rand, c)

				k1A := new(Point).ScalarMult(k1, A)
				require.True(t, k1A.OnTheCurve())

				if rand.Intn(10) != 0 {
					continue
				}

				// (k1 + k2)·A = k1·A + k2·A
				sum := new(big.Int).Add(k1, k2)
				lhs := new(Point).ScalarMult(sum, A)
				rhs := new(Point).Add(k1A, new(Point).ScalarMult(k2, A))
				require.True(t, lhs.Equal(rhs))

				// k·(A + B) = k·A + k·B
				lhs = new(Point).ScalarMult(k1, new(Point).Add(A, B))
				rhs = new(Point).Add(k1A, new(Point).ScalarMult(k1, B))
				require.True(t, lhs.Equal(rhs))
			}
		})
	}
}

func TestScalarMultSmallAndNegative(t *testing.T) {
	for _, g := range SupportedGroups {
		G := g.Generator()
		require.True(t, new(Point).ScalarMult(big.NewInt(0), G).IsIdentity())
		require.True(t, new(Point).ScalarMult(big.NewInt(1), G).Equal(G))
		require.True(t, new(Point).ScalarMult(big.NewInt(3), G).Equal(new(Point).Add(G, new(Point).Double(G))))
		require.True(t, new(Point).ScalarMult(big.NewInt(-1), G).Equal(new(Point).Negate(G)))
		require.True(t, new(Point).ScalarMult(big.NewInt(-5), G).Equal(
			new(Point).Negate(new(Point).ScalarMult(big.NewInt(5), G))))
		require.True(t, new(Point).ScalarMult(big.NewInt(7), g.Identity()).IsIdentity())
	}
}

func TestGroupScalarMult(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			for range iterations(10) {
				k1, err := g.Scalar().SetRandom(rand)
				require.NoError(t, err)
				k2, err := g.Scalar().SetRandom(rand)
				require.NoError(t, err)

				// (k1 + k2 mod n)·G = k1·G + k2·G
				lhs := g.ScalarBaseMult(k1.Clone().Add(k2))
				rhs := new(Point).Add(g.ScalarBaseMult(k1), g.ScalarBaseMult(k2))
				require.True(t, lhs.Equal(rhs))

				// (k1·k2)·G = k1·(k2·G)
				lhs = g.ScalarBaseMult(k1.Clone().Multiply(k2))
				rhs = g.ScalarMult(k1, g.ScalarBaseMult(k2))
				require.True(t, lhs.Equal(rhs))
			}
			require.True(t, g.ScalarBaseMult(g.Scalar()).IsIdentity())
		})
	}
}

func TestGroupScalarMultPanicsOnForeignInputs(t *testing.T) {
	require.Panics(t, func() { P256.ScalarBaseMult(P384.Scalar().SetUint(1)) })
	require.Panics(t, func() { P256.ScalarMult(P256.Scalar().SetUint(1), P384.Generator()) })
	require.Panics(t, func() { new(Point).Add(P256.Generator(), P384.Generator()) })
}

func TestEqualIgnoresRepresentation(t *testing.T) {
	rand := unsaferand.New(t.Name())
	for _, g := range SupportedGroups {
		A := randomPoint(t, rand, g.Curve())
		B := A.Clone()
		require.NoError(t, B.RandomizeRepresentation(rand))
		require.False(t, A.z.Equal(&B.z))
		require.True(t, A.Equal(B))
		require.True(t, B.OnTheCurve())
		require.False(t, A.Equal(g.Identity()))
		require.False(t, g.Identity().Equal(A))
		require.True(t, g.Identity().Equal(g.Identity()))

		O := g.Identity()
		require.NoError(t, O.RandomizeRepresentation(rand))
		require.True(t, O.IsIdentity())
	}
}

func TestOnTheCurveRejectsTamperedPoints(t *testing.T) {
	rand := unsaferand.New(t.Name())
	for _, g := range SupportedGroups {
		c := g.Curve()
		A := randomPoint(t, rand, c)
		c.Add(&A.y, &A.y, c.One())
		require.False(t, A.OnTheCurve())
		A.ForceAffine()
		require.False(t, A.OnTheCurve())
	}
}

func TestNewPointRange(t *testing.T) {
	c := P256.Curve()
	p := c.P()
	for _, v := range []*big.Int{big.NewInt(0), big.NewInt(-1), p, new(big.Int).Add(p, big.NewInt(1))} {
		_, err := NewPoint(c, v, big.NewInt(1))
		require.ErrorIs(t, err, ErrCoordinateRange)
		_, err = NewPoint(c, big.NewInt(1), v)
		require.ErrorIs(t, err, ErrCoordinateRange)
	}
	_, err := NewPoint(c, big.NewInt(1), new(big.Int).Sub(p, big.NewInt(1)))
	require.NoError(t, err)
}

func TestAffineOfIdentity(t *testing.T) {
	_, _, err := P256.Identity().Affine()
	require.ErrorIs(t, err, ErrIdentity)
	_, err = P256.Identity().AffineX()
	require.ErrorIs(t, err, ErrIdentity)
	require.Equal(t, "(identity)", P256.Identity().String())
}

func TestPointsSum(t *testing.T) {
	rand := unsaferand.New(t.Name())
	c := P384.Curve()
	points := Points{randomPoint(t, rand, c), randomPoint(t, rand, c), randomPoint(t, rand, c)}
	expected := new(Point).Add(new(Point).Add(points[0], points[1]), points[2])
	require.True(t, points.Sum().Equal(expected))
	require.Nil(t, Points{}.Sum())
}
