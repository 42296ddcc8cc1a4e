package nist

import "math/big"

// RedcP384 sets x = x mod P-384, where P-384 = 2^384 - 2^128 - 2^96 + 2^32 - 1.
//
// FIPS 186-4 D.2.4: T + 2*S1 + S2 + S3 + S4 + S5 + S6 - D1 - D2 - D3 over 32-bit words. The subtracted terms sum to
// less than 2^384 + 2^161, so 2*P is folded in as bias; the sum then stays below 7*2^384.
func RedcP384(x *big.Int, ws *Workspace) {
	pr := P384
	if !pr.enter(x) {
		return
	}
	a := wsOrNew(ws).load(x, 24)

	var A [24]int64
	for i := range A {
		A[i] = int64(a[i])
	}
	b := pr.bias

	var r [12]uint32
	var s int64

	s = b[0] + A[0] + A[12] + A[20] + A[21] - A[23]
	r[0] = uint32(s)
	s >>= 32

	s += b[1] + A[1] + A[13] + A[22] + A[23] - A[12] - A[20]
	r[1] = uint32(s)
	s >>= 32

	s += b[2] + A[2] + A[14] + A[23] - A[13] - A[21]
	r[2] = uint32(s)
	s >>= 32

	s += b[3] + A[3] + A[12] + A[15] + A[20] + A[21] - A[14] - A[22] - A[23]
	r[3] = uint32(s)
	s >>= 32

	s += b[4] + A[4] + A[12] + A[13] + A[16] + A[20] + 2*A[21] + A[22] - A[15] - 2*A[23]
	r[4] = uint32(s)
	s >>= 32

	s += b[5] + A[5] + A[13] + A[14] + A[17] + A[21] + 2*A[22] + A[23] - A[16]
	r[5] = uint32(s)
	s >>= 32

	s += b[6] + A[6] + A[14] + A[15] + A[18] + A[22] + 2*A[23] - A[17]
	r[6] = uint32(s)
	s >>= 32

	s += b[7] + A[7] + A[15] + A[16] + A[19] + A[23] - A[18]
	r[7] = uint32(s)
	s >>= 32

	s += b[8] + A[8] + A[16] + A[17] + A[20] - A[19]
	r[8] = uint32(s)
	s >>= 32

	s += b[9] + A[9] + A[17] + A[18] + A[21] - A[20]
	r[9] = uint32(s)
	s >>= 32

	s += b[10] + A[10] + A[18] + A[19] + A[22] - A[21]
	r[10] = uint32(s)
	s >>= 32

	s += b[11] + A[11] + A[19] + A[20] + A[23] - A[22]
	r[11] = uint32(s)
	s >>= 32

	pr.finish(x, r[:], s)
}
