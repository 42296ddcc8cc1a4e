package gfp

import (
	"math/big"
	"math/bits"
)

// montgomery implements the generic reduction path for moduli without a fast reducer. Elements are held as
// x*R mod p with R = 2^(W*k), where W is the platform word size and k the number of words of p.
type montgomery struct {
	p     *big.Int
	rBits uint
	mask  *big.Int // R - 1
	pInv  *big.Int // -p^-1 mod R
	r2    *big.Int // R^2 mod p
}

func newMontgomery(p *big.Int) *montgomery {
	rBits := uint(len(p.Bits()) * bits.UintSize)
	r := new(big.Int).Lsh(big.NewInt(1), rBits)

	pInv := new(big.Int).ModInverse(p, r)
	pInv.Sub(r, pInv)

	r2 := new(big.Int).Mul(r, r)
	r2.Mod(r2, p)

	return &montgomery{
		p:     p,
		rBits: rBits,
		mask:  new(big.Int).Sub(r, big.NewInt(1)),
		pInv:  pInv,
		r2:    r2,
	}
}

// redc sets t = t * R^-1 mod p. t must be in [0, p*R); the product of two reduced values always is.
func (m *montgomery) redc(t *big.Int, ws *Workspace) {
	u := &ws.u
	u.And(t, m.mask)
	u.Mul(u, m.pInv)
	u.And(u, m.mask)
	u.Mul(u, m.p)
	t.Add(t, u)
	t.Rsh(t, m.rBits)
	if t.Cmp(m.p) >= 0 {
		t.Sub(t, m.p)
	}
}

// toRep sets t = t * R mod p for t in [0, p).
func (m *montgomery) toRep(t *big.Int, ws *Workspace) {
	t.Mul(t, m.r2)
	m.redc(t, ws)
}
