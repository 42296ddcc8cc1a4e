package nist

import "math/big"

// RedcP192 sets x = x mod P-192, where P-192 = 2^192 - 2^64 - 1 and 2^192 ≡ 2^64 + 1.
//
// With x split into 64-bit chunks c0..c5 the reduction is (c2,c1,c0) + (0,c3,c3) + (c4,c4,0) + (c5,c5,c5). All terms
// are positive, so the folded sum is below 4*2^192.
func RedcP192(x *big.Int, ws *Workspace) {
	pr := P192
	if !pr.enter(x) {
		return
	}
	a := wsOrNew(ws).load(x, 12)

	var A [12]int64
	for i := range A {
		A[i] = int64(a[i])
	}

	var r [6]uint32
	var s int64

	s = A[0] + A[6] + A[10]
	r[0] = uint32(s)
	s >>= 32
	s += A[1] + A[7] + A[11]
	r[1] = uint32(s)
	s >>= 32

	s += A[2] + A[6] + A[8] + A[10]
	r[2] = uint32(s)
	s >>= 32
	s += A[3] + A[7] + A[9] + A[11]
	r[3] = uint32(s)
	s >>= 32

	s += A[4] + A[8] + A[10]
	r[4] = uint32(s)
	s >>= 32
	s += A[5] + A[9] + A[11]
	r[5] = uint32(s)
	s >>= 32

	pr.finish(x, r[:], s)
}
