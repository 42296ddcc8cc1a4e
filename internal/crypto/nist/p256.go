package nist

import "math/big"

// RedcP256 sets x = x mod P-256, where P-256 = 2^256 - 2^224 + 2^192 + 2^96 - 1.
//
// FIPS 186-4 D.2.3: T + 2*S1 + 2*S2 + S3 + S4 - D1 - D2 - D3 - D4 over 32-bit words. The four subtracted terms are
// each below 2^256, so 5*P is folded in as bias; the sum then stays below 12*2^256.
func RedcP256(x *big.Int, ws *Workspace) {
	pr := P256
	if !pr.enter(x) {
		return
	}
	a := wsOrNew(ws).load(x, 16)

	var A [16]int64
	for i := range A {
		A[i] = int64(a[i])
	}
	b := pr.bias

	var r [8]uint32
	var s int64

	s = b[0] + A[0] + A[8] + A[9] - A[11] - A[12] - A[13] - A[14]
	r[0] = uint32(s)
	s >>= 32

	s += b[1] + A[1] + A[9] + A[10] - A[12] - A[13] - A[14] - A[15]
	r[1] = uint32(s)
	s >>= 32

	s += b[2] + A[2] + A[10] + A[11] - A[13] - A[14] - A[15]
	r[2] = uint32(s)
	s >>= 32

	s += b[3] + A[3] + 2*A[11] + 2*A[12] + A[13] - A[15] - A[8] - A[9]
	r[3] = uint32(s)
	s >>= 32

	s += b[4] + A[4] + 2*A[12] + 2*A[13] + A[14] - A[9] - A[10]
	r[4] = uint32(s)
	s >>= 32

	s += b[5] + A[5] + 2*A[13] + 2*A[14] + A[15] - A[10] - A[11]
	r[5] = uint32(s)
	s >>= 32

	s += b[6] + A[6] + 3*A[14] + 2*A[15] + A[13] - A[8] - A[9]
	r[6] = uint32(s)
	s >>= 32

	s += b[7] + A[7] + 3*A[15] + A[8] - A[10] - A[11] - A[12] - A[13]
	r[7] = uint32(s)
	s >>= 32

	pr.finish(x, r[:], s)
}
