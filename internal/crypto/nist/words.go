package nist

import (
	"crypto/subtle"
	"math/big"
	"math/bits"
)

// The reduction identities are expressed over 32-bit words. Operands are converted from and to the platform's
// big.Word layout, so the same routines serve 32-bit and 64-bit targets.

const wordBits = bits.UintSize

// load32 writes the magnitude of x into dst as little-endian 32-bit words. Words of x beyond len(dst) are ignored,
// unused words of dst are cleared.
func load32(dst []uint32, x *big.Int) {
	clear(dst)
	for i, w := range x.Bits() {
		if wordBits == 32 {
			if i < len(dst) {
				dst[i] = uint32(w)
			}
			continue
		}
		if 2*i < len(dst) {
			dst[2*i] = uint32(w)
		}
		if 2*i+1 < len(dst) {
			dst[2*i+1] = uint32(uint64(w) >> 32)
		}
	}
}

// store32 sets x to the little-endian 32-bit word vector src. The backing array of x is reused when large enough;
// callers must have consumed the previous value of x.
func store32(x *big.Int, src []uint32) {
	n := (len(src)*32 + wordBits - 1) / wordBits
	z := x.Bits()
	if cap(z) < n {
		z = make([]big.Word, n)
	} else {
		z = z[:n]
	}
	for i := range z {
		if wordBits == 32 {
			z[i] = big.Word(src[i])
			continue
		}
		lo := uint64(src[2*i])
		var hi uint64
		if 2*i+1 < len(src) {
			hi = uint64(src[2*i+1])
		}
		z[i] = big.Word(lo | hi<<32)
	}
	x.SetBits(z)
}

// sub32 computes r -= m over len(r) words and returns the final borrow (0 or 1).
func sub32(r, m []uint32) uint32 {
	var borrow uint32
	for i := range r {
		r[i], borrow = bits.Sub32(r[i], m[i], borrow)
	}
	return borrow
}

// condAdd32 computes r += m if mask is all-ones, and leaves r unchanged if mask is zero. The carry out is dropped.
func condAdd32(r, m []uint32, mask uint32) {
	var carry uint32
	for i := range r {
		r[i], carry = bits.Add32(r[i], m[i]&mask, carry)
	}
}

// condSub32 computes r -= m if mask is all-ones, and leaves r unchanged if mask is zero. It returns the borrow out.
func condSub32(r, m []uint32, mask uint32) uint32 {
	var borrow uint32
	for i := range r {
		r[i], borrow = bits.Sub32(r[i], m[i]&mask, borrow)
	}
	return borrow
}

// isEqual32 returns 1 if a == b and 0 otherwise, in constant time.
func isEqual32(a, b uint32) uint32 {
	return uint32(subtle.ConstantTimeEq(int32(a), int32(b)))
}

// expandMask maps 1 to an all-ones mask and 0 to zero.
func expandMask(bit uint32) uint32 {
	return -(bit & 1)
}
