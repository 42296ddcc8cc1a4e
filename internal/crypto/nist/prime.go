// Package nist implements fast modular reduction for the NIST primes P-192, P-224, P-256, P-384 and P-521.
//
// Each reducer takes an operand x with 0 <= x < P² (the product of two values already reduced mod P) and reduces it
// in place, folding the high words back onto the low words using the prime's generalized Mersenne form instead of
// long division. Operands outside that range are a programming error and cause a panic.
package nist

import (
	"fmt"
	"math/big"
)

// Prime describes one of the supported moduli together with its reduction routine.
type Prime struct {
	Name    string
	Bits    int // bit length of the prime
	Words32 int // number of 32-bit words of the prime

	p      *big.Int
	words  int      // number of platform words of the prime
	p32    []uint32 // the prime as 32-bit words
	bias   []int64  // 32-bit word coefficients of the bias multiple of P folded into the accumulator
	mults  [][]uint32
	reduce func(x *big.Int, ws *Workspace)
}

var (
	// FIPS 186-4, Section D.1.2
	P192 = newPrime("P-192", "fffffffffffffffffffffffffffffffeffffffffffffffff", 0, 4)
	P224 = newPrime("P-224", "ffffffffffffffffffffffffffffffff000000000000000000000001", 2, 5)
	P256 = newPrime("P-256", "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 5, 12)
	P384 = newPrime("P-384", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff", 2, 7)
	P521 = newPrime("P-521", "01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 0, 0)
)

// Primes lists all supported primes in increasing size.
var Primes = []*Prime{P192, P224, P256, P384, P521}

func init() {
	P192.reduce = RedcP192
	P224.reduce = RedcP224
	P256.reduce = RedcP256
	P384.reduce = RedcP384
	P521.reduce = RedcP521
}

// newPrime builds the descriptor of a prime. biasMultiple is the multiple of P added during folding so the
// accumulated sum stays non-negative, tableSize the number of entries of mults, where mults[i] = (i+1)*P mod 2^Bits.
func newPrime(name, hex string, biasMultiple, tableSize int) *Prime {
	p, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("nist: invalid prime constant for " + name)
	}

	pr := &Prime{Name: name, Bits: p.BitLen(), p: p, words: len(p.Bits())}
	pr.Words32 = (pr.Bits + 31) / 32
	pr.p32 = make([]uint32, pr.Words32)
	load32(pr.p32, p)

	pr.bias = make([]int64, pr.Words32)
	for i, w := range pr.p32 {
		pr.bias[i] = int64(biasMultiple) * int64(w)
	}

	mask := new(big.Int).Lsh(big.NewInt(1), uint(pr.Bits))
	mask.Sub(mask, big.NewInt(1))

	pr.mults = make([][]uint32, tableSize)
	m := new(big.Int)
	for i := range pr.mults {
		m.Mul(p, big.NewInt(int64(i+1)))
		m.And(m, mask)
		pr.mults[i] = make([]uint32, pr.Words32)
		load32(pr.mults[i], m)
	}
	return pr
}

// P returns a copy of the prime.
func (pr *Prime) P() *big.Int {
	return new(big.Int).Set(pr.p)
}

// Reduce sets x = x mod P using the prime's fast reduction routine. The workspace may be nil.
func (pr *Prime) Reduce(x *big.Int, ws *Workspace) {
	pr.reduce(x, ws)
}

// WorkspaceSize returns the number of 32-bit words a workspace needs to reduce operands without growing.
func (pr *Prime) WorkspaceSize() int {
	return 2 * pr.Words32
}

// ByModulus returns the descriptor of the given prime, or nil if p is not one of the supported NIST primes.
func ByModulus(p *big.Int) *Prime {
	for _, pr := range Primes {
		if pr.p.Cmp(p) == 0 {
			return pr
		}
	}
	return nil
}

// enter checks the operand against the reducer's contract and reports whether any reduction work is needed. An
// operand with fewer platform words than the prime is already reduced.
func (pr *Prime) enter(x *big.Int) bool {
	if x.Sign() < 0 {
		panic(fmt.Sprintf("nist: %s reduction of a negative operand", pr.Name))
	}
	if x.BitLen() > 2*pr.Bits {
		panic(fmt.Sprintf("nist: %s reduction operand of %d bits exceeds P²", pr.Name, x.BitLen()))
	}
	return len(x.Bits()) >= pr.words
}

// finish completes a folding reduction. r holds the low Words32 words of the folded sum, s the carry above them,
// i.e. the folded value is r + s*2^Bits. Subtracting (s+1)*P leaves a value in (-P, P); on borrow one P is added
// back.
func (pr *Prime) finish(x *big.Int, r []uint32, s int64) {
	if s < 0 || s >= int64(len(pr.mults)) {
		panic(fmt.Sprintf("nist: %s reduction overflow %d out of range", pr.Name, s))
	}
	borrow := sub32(r, pr.mults[s])
	condAdd32(r, pr.p32, expandMask(borrow))
	store32(x, r)
}

func wsOrNew(ws *Workspace) *Workspace {
	if ws == nil {
		return &Workspace{}
	}
	return ws
}
