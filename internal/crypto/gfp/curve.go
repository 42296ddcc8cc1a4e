// Package gfp implements the curve context for short Weierstrass curves y² = x³ + ax + b over a prime field GF(p).
//
// A Curve owns the field parameters in representation form and provides the field arithmetic the point engine is
// built on. For the NIST primes the representation is the plain residue and products are reduced with the fast
// reducers of the nist package; any other prime uses Montgomery residues with generic Montgomery reduction.
package gfp

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/smartcontractkit/ecgfp/internal/crypto/nist"
)

// Curve is the curve context: the prime modulus p, the coefficients a and b, and the field arithmetic over p.
// A Curve is immutable after construction and safe for concurrent use. It must not be copied.
type Curve struct {
	name      string
	p         *big.Int
	pMinus2   []byte
	modulus   *Modulus
	a, b, one Element
	aIsZero   bool
	aIsMinus3 bool
	bitLen    int
	byteLen   int

	// Exactly one of prime and mont is set.
	prime *nist.Prime
	mont  *montgomery

	pool sync.Pool
}

type options struct {
	name    string
	generic bool
}

// Option configures NewCurve.
type Option func(*options)

// WithName sets the name reported by Curve.Name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithGenericReduction selects Montgomery reduction even when p is a NIST prime.
func WithGenericReduction() Option {
	return func(o *options) { o.generic = true }
}

// NewCurve returns the context of the curve y² = x³ + ax + b over GF(p). The prime p must be odd and greater than
// three, a and b must be in [0, p), and the curve must be non-singular.
func NewCurve(p, a, b *big.Int, opts ...Option) (*Curve, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if p.Cmp(big.NewInt(3)) <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: p must be an odd prime greater than 3", ErrInvalidParameters)
	}
	if a.Sign() < 0 || a.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: a must be in [0, p)", ErrInvalidParameters)
	}
	if b.Sign() < 0 || b.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: b must be in [0, p)", ErrInvalidParameters)
	}
	if isSingular(p, a, b) {
		return nil, fmt.Errorf("%w: 4a³ + 27b² = 0 (mod p)", ErrInvalidParameters)
	}

	modulus, err := NewModulus(p)
	if err != nil {
		return nil, err
	}

	c := &Curve{
		name:    o.name,
		p:       new(big.Int).Set(p),
		modulus: modulus,
		bitLen:  p.BitLen(),
		byteLen: (p.BitLen() + 7) / 8,
	}
	c.pMinus2 = new(big.Int).Sub(p, big.NewInt(2)).Bytes()
	if c.name == "" {
		c.name = fmt.Sprintf("GF(0x%x)", p)
	}

	if !o.generic {
		c.prime = nist.ByModulus(p)
	}
	if c.prime == nil {
		c.mont = newMontgomery(c.p)
	}
	c.pool.New = func() any { return c.NewWorkspace() }

	c.ToRep(&c.a, a)
	c.ToRep(&c.b, b)
	c.ToRep(&c.one, big.NewInt(1))
	c.aIsZero = a.Sign() == 0
	c.aIsMinus3 = new(big.Int).Sub(p, big.NewInt(3)).Cmp(a) == 0
	return c, nil
}

func isSingular(p, a, b *big.Int) bool {
	d := new(big.Int).Exp(a, big.NewInt(3), p)
	d.Mul(d, big.NewInt(4))
	t := new(big.Int).Mul(b, b)
	t.Mul(t, big.NewInt(27))
	d.Add(d, t)
	return d.Mod(d, p).Sign() == 0
}

// Name returns the name of the curve, used for logging and metrics.
func (c *Curve) Name() string { return c.name }

// P returns a copy of the field prime.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// Modulus returns the field prime as a Modulus.
func (c *Curve) Modulus() *Modulus { return c.modulus }

// BitLen returns the bit length of p.
func (c *Curve) BitLen() int { return c.bitLen }

// ByteLen returns the byte length of p, the length of an encoded coordinate.
func (c *Curve) ByteLen() int { return c.byteLen }

// A returns the coefficient a in representation form. The result must not be modified.
func (c *Curve) A() *Element { return &c.a }

// B returns the coefficient b in representation form. The result must not be modified.
func (c *Curve) B() *Element { return &c.b }

// One returns the representation of 1. The result must not be modified.
func (c *Curve) One() *Element { return &c.one }

// AIsZero reports whether a = 0.
func (c *Curve) AIsZero() bool { return c.aIsZero }

// AIsMinus3 reports whether a = -3 (mod p).
func (c *Curve) AIsMinus3() bool { return c.aIsMinus3 }

// IsNIST reports whether products are reduced with a NIST fast reducer.
func (c *Curve) IsNIST() bool { return c.prime != nil }

// Equal reports whether c and other are interchangeable: same parameters and same representation.
func (c *Curve) Equal(other *Curve) bool {
	if c == other {
		return true
	}
	if other == nil || c.IsNIST() != other.IsNIST() || c.p.Cmp(other.p) != 0 {
		return false
	}
	return c.a.Equal(&other.a) && c.b.Equal(&other.b)
}

// ToRep sets z to the representation of x mod p and returns z.
func (c *Curve) ToRep(z *Element, x *big.Int) *Element {
	z.v.Mod(x, c.p)
	if c.mont != nil {
		ws := c.AcquireWorkspace()
		c.mont.toRep(&z.v, ws)
		c.ReleaseWorkspace(ws)
	}
	return z
}

// FromRep returns the plain integer in [0, p) represented by x.
func (c *Curve) FromRep(x *Element) *big.Int {
	r := new(big.Int).Set(&x.v)
	if c.mont != nil {
		ws := c.AcquireWorkspace()
		c.mont.redc(r, ws)
		c.ReleaseWorkspace(ws)
	}
	return r
}

// NewElement returns the representation of x mod p.
func (c *Curve) NewElement(x *big.Int) *Element {
	return c.ToRep(new(Element), x)
}

// Redc sets z to the reduction of t, the double-width product of two representation-form values, and returns z.
// t must be in [0, p²) and is clobbered. The workspace may be nil.
func (c *Curve) Redc(z *Element, t *big.Int, ws *Workspace) *Element {
	if ws == nil {
		ws = c.AcquireWorkspace()
		defer c.ReleaseWorkspace(ws)
	}
	if c.prime != nil {
		c.prime.Reduce(t, ws.words)
	} else {
		c.mont.redc(t, ws)
	}
	z.v.Set(t)
	return z
}

// Mul sets z = x*y and returns z. The workspace may be nil.
func (c *Curve) Mul(z, x, y *Element, ws *Workspace) *Element {
	if ws == nil {
		ws = c.AcquireWorkspace()
		defer c.ReleaseWorkspace(ws)
	}
	ws.t.Mul(&x.v, &y.v)
	return c.Redc(z, &ws.t, ws)
}

// Sqr sets z = x² and returns z. The workspace may be nil.
func (c *Curve) Sqr(z, x *Element, ws *Workspace) *Element {
	if ws == nil {
		ws = c.AcquireWorkspace()
		defer c.ReleaseWorkspace(ws)
	}
	ws.t.Mul(&x.v, &x.v)
	return c.Redc(z, &ws.t, ws)
}

// Add sets z = x+y and returns z.
func (c *Curve) Add(z, x, y *Element) *Element {
	z.v.Add(&x.v, &y.v)
	if z.v.Cmp(c.p) >= 0 {
		z.v.Sub(&z.v, c.p)
	}
	return z
}

// Sub sets z = x-y and returns z.
func (c *Curve) Sub(z, x, y *Element) *Element {
	z.v.Sub(&x.v, &y.v)
	if z.v.Sign() < 0 {
		z.v.Add(&z.v, c.p)
	}
	return z
}

// Neg sets z = -x and returns z.
func (c *Curve) Neg(z, x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}
	z.v.Sub(c.p, &x.v)
	return z
}

// Shl sets z = 2^k * x and returns z. Multiplying by a small constant commutes with the representation, so the
// shift is followed only by subtractions of p. It is meant for k <= 3.
func (c *Curve) Shl(z, x *Element, k uint) *Element {
	z.v.Lsh(&x.v, k)
	for z.v.Cmp(c.p) >= 0 {
		z.v.Sub(&z.v, c.p)
	}
	return z
}

// Invert sets z = 1/x and returns z, computed as x^(p-2) in constant time with respect to x. The inverse of zero is
// zero. The workspace may be nil.
func (c *Curve) Invert(z, x *Element, ws *Workspace) *Element {
	if ws == nil {
		ws = c.AcquireWorkspace()
		defer c.ReleaseWorkspace(ws)
	}
	t := &ws.t
	t.Set(&x.v)
	if c.mont != nil {
		c.mont.redc(t, ws)
	}
	c.modulus.Exp(t, t, c.pMinus2)
	if c.mont != nil {
		c.mont.toRep(t, ws)
	}
	z.v.Set(t)
	return z
}

// Sqrt sets z to a square root of x and returns (z, true). If x is not a quadratic residue, z is unchanged and
// Sqrt returns (nil, false). Which of the two roots is returned is unspecified.
func (c *Curve) Sqrt(z, x *Element) (*Element, bool) {
	r := new(big.Int).ModSqrt(c.FromRep(x), c.p)
	if r == nil {
		return nil, false
	}
	return c.ToRep(z, r), true
}

// IsOdd reports whether the plain value of x is odd.
func (c *Curve) IsOdd(x *Element) bool {
	return c.FromRep(x).Bit(0) == 1
}

// Bytes returns the big-endian encoding of the plain value of x, ByteLen() bytes long.
func (c *Curve) Bytes(x *Element) []byte {
	return c.FromRep(x).FillBytes(make([]byte, c.byteLen))
}
