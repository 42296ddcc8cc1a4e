package ec

import (
	"testing"

	"github.com/smartcontractkit/ecgfp/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/require"
)

func TestForceAllAffineMatchesForceAffine(t *testing.T) {
	for _, g := range SupportedGroups {
		t.Run(g.Name(), func(t *testing.T) {
			rand := unsaferand.New(t.Name())
			for _, n := range []int{0, 1, 2, 3, 17, 64} {
				batch := make([]*Point, n)
				single := make([]*Point, n)
				for i := range batch {
					if i%5 == 3 {
						batch[i] = g.Identity()
					} else {
						batch[i] = randomPoint(t, rand, g.Curve())
					}
					single[i] = batch[i].Clone()
				}

				ForceAllAffine(batch)
				for i := range batch {
					single[i].ForceAffine()
					if single[i].IsIdentity() {
						require.True(t, batch[i].IsIdentity())
						continue
					}
					require.True(t, batch[i].IsAffine())
					require.True(t, batch[i].x.Equal(&single[i].x))
					require.True(t, batch[i].y.Equal(&single[i].y))
					require.True(t, batch[i].OnTheCurve())
				}
			}
		})
	}
}

func TestForceAffineKeepsPoint(t *testing.T) {
	rand := unsaferand.New(t.Name())
	for _, g := range SupportedGroups {
		A := randomPoint(t, rand, g.Curve())
		require.False(t, A.IsAffine())
		B := A.Clone().ForceAffine()
		require.True(t, B.IsAffine())
		require.True(t, A.Equal(B))

		O := g.Identity().ForceAffine()
		require.True(t, O.IsIdentity())
	}
}

func TestForceAllAffineWithAffineAndIdentityOnly(t *testing.T) {
	points := []*Point{P256.Identity(), P256.Generator(), P256.Identity()}
	ForceAllAffine(points)
	require.True(t, points[0].IsIdentity())
	require.True(t, points[1].Equal(P256.Generator()))
	require.True(t, points[2].IsIdentity())

	require.Panics(t, func() { ForceAllAffine([]*Point{P256.Generator(), P384.Generator()}) })
}
