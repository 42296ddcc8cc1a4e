package nist

import (
	"fmt"
	"math/big"
	"math/bits"
)

// RedcP521 sets x = x mod P-521, where P-521 = 2^521 - 1.
//
// x = hi*2^521 + lo ≡ hi + lo. For x < P² both halves are below 2^521, so the sum is below 2P and a single
// conditional subtraction of P completes the reduction.
func RedcP521(x *big.Int, ws *Workspace) {
	pr := P521
	if !pr.enter(x) {
		return
	}
	a := wsOrNew(ws).load(x, 34)

	var r [17]uint32
	var carry uint32
	for i := range r {
		lo := a[i]
		if i == 16 {
			lo &= 0x1ff
		}
		hi := a[16+i]>>9 | a[17+i]<<23
		r[i], carry = bits.Add32(lo, hi, carry)
	}
	if carry != 0 {
		panic(fmt.Sprintf("nist: %s reduction carried out of the top word", pr.Name))
	}

	// The sum needs a subtraction if it has bit 521 set, or if it equals P.
	allOnes := uint32(1)
	for _, w := range r[:16] {
		allOnes &= isEqual32(w, 0xffffffff)
	}
	needsRed := r[16]>>9 | allOnes&isEqual32(r[16], 0x1ff)
	condSub32(r[:], pr.p32, expandMask(needsRed))
	store32(x, r[:])
}
