package nist

import "math/big"

// RedcP224 sets x = x mod P-224, where P-224 = 2^224 - 2^96 + 1 and 2^224 ≡ 2^96 - 1.
//
// FIPS 186-4 D.2.2: T + S1 + S2 - D1 - D2 over 32-bit words. The subtracted terms are below 2^224 + 2^96, so 2*P is
// folded in as bias to keep the sum positive; the sum then stays below 5*2^224.
func RedcP224(x *big.Int, ws *Workspace) {
	pr := P224
	if !pr.enter(x) {
		return
	}
	a := wsOrNew(ws).load(x, 14)

	var A [14]int64
	for i := range A {
		A[i] = int64(a[i])
	}
	b := pr.bias

	var r [7]uint32
	var s int64

	s = b[0] + A[0] - A[7] - A[11]
	r[0] = uint32(s)
	s >>= 32

	s += b[1] + A[1] - A[8] - A[12]
	r[1] = uint32(s)
	s >>= 32

	s += b[2] + A[2] - A[9] - A[13]
	r[2] = uint32(s)
	s >>= 32

	s += b[3] + A[3] + A[7] + A[11] - A[10]
	r[3] = uint32(s)
	s >>= 32

	s += b[4] + A[4] + A[8] + A[12] - A[11]
	r[4] = uint32(s)
	s >>= 32

	s += b[5] + A[5] + A[9] + A[13] - A[12]
	r[5] = uint32(s)
	s >>= 32

	s += b[6] + A[6] + A[10] - A[13]
	r[6] = uint32(s)
	s >>= 32

	pr.finish(x, r[:], s)
}
