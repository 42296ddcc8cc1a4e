package ec

import (
	"fmt"
	"math/big"

	"filippo.io/nistec"
	"github.com/smartcontractkit/ecgfp/internal/codec"
	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
	"github.com/smartcontractkit/ecgfp/internal/crypto/nist"
)

// Group is a named prime-order curve group: a curve context, its base point and the order of the base point.
type Group struct {
	name   string
	curve  *gfp.Curve
	order  *gfp.Modulus
	gx, gy *big.Int
}

var SupportedGroups = []*Group{
	P192,
	P224,
	P256,
	P384,
	P521,
	Secp256k1,
}

var (
	// See:
	//  - https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.186-4.pdf
	//  - https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-186.pdf
	//  - https://www.secg.org/sec2-v2.pdf

	// FIPS 186-4, Section D.1.2.1
	P192 = newGroup("P-192",
		nist.P192.P(),
		"0xfffffffffffffffffffffffffffffffefffffffffffffffc",
		"0x64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1",
		"0x188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
		"0x07192b95ffc8da78631011ed6b24cdd573f977a11e794811",
		"0xffffffffffffffffffffffff99def836146bc9b1b4d22831",
	)

	// NIST 800-186, Section 3.2.1.2
	P224 = newNISTGroup("P-224", nist.P224,
		"26959946667150639794667015087019625940457807714424391721682722368061",
		nistec.NewP224Point().SetGenerator().Bytes())

	// NIST 800-186, Section 3.2.1.3
	P256 = newNISTGroup("P-256", nist.P256,
		"115792089210356248762697446949407573529996955224135760342422259061068512044369",
		nistec.NewP256Point().SetGenerator().Bytes())

	// NIST 800-186, Section 3.2.1.4
	P384 = newNISTGroup("P-384", nist.P384,
		"39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643",
		nistec.NewP384Point().SetGenerator().Bytes())

	// NIST 800-186, Section 3.2.1.5
	P521 = newNISTGroup("P-521", nist.P521,
		"6864797660130609714981900799081393217269435300143305409394463459185543183397655394245057746333217197532963996371363321113864768612440380340372808892707005449",
		nistec.NewP521Point().SetGenerator().Bytes())

	// SEC 2, Section 2.4.1
	Secp256k1 = newGroup("secp256k1",
		mustInt("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		"0",
		"7",
		"0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		"0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
	)
)

func mustInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("invalid integer constant: " + s)
	}
	return n
}

func newGroup(name string, p *big.Int, a, b, gx, gy, order string) *Group {
	c, err := gfp.NewCurve(p, mustInt(a), mustInt(b), gfp.WithName(name))
	if err != nil {
		panic(fmt.Sprintf("invalid parameters for %s: %v", name, err))
	}
	return &Group{name, c, gfp.MustModulus(order), mustInt(gx), mustInt(gy)}
}

// newNISTGroup builds a group with a = -3 from its uncompressed generator encoding. The coefficient b follows from
// the generator: b = gy² - gx³ + 3·gx.
func newNISTGroup(name string, prime *nist.Prime, order string, generator []byte) *Group {
	p := prime.P()
	n := (prime.Bits + 7) / 8
	if len(generator) != 1+2*n || generator[0] != tagUncompressed {
		panic("invalid generator encoding for " + name)
	}
	gx := new(big.Int).SetBytes(generator[1 : 1+n])
	gy := new(big.Int).SetBytes(generator[1+n:])

	b := new(big.Int).Mul(gy, gy)
	t := new(big.Int).Exp(gx, big.NewInt(3), nil)
	b.Sub(b, t)
	t.Mul(gx, big.NewInt(3))
	b.Add(b, t)
	b.Mod(b, p)

	a := new(big.Int).Sub(p, big.NewInt(3))
	c, err := gfp.NewCurve(p, a, b, gfp.WithName(name))
	if err != nil {
		panic(fmt.Sprintf("invalid parameters for %s: %v", name, err))
	}
	return &Group{name, c, gfp.MustModulus(order), gx, gy}
}

// Returns the name of the group.
func (g *Group) Name() string { return g.name }

// Returns the curve context of the group.
func (g *Group) Curve() *gfp.Curve { return g.curve }

// Returns the order of the base point. This is NOT the prime modulus of the field over which the curve is defined.
func (g *Group) Order() *gfp.Modulus { return g.order }

// g.Generator() returns a copy of the base point, the caller may modify it.
func (g *Group) Generator() *Point {
	p, err := NewPoint(g.curve, g.gx, g.gy)
	if err != nil {
		panic(err)
	}
	return p
}

// g.Identity() returns the identity of the group. Use it as receiver, or to unmarshal points into.
func (g *Group) Identity() *Point {
	return NewIdentity(g.curve)
}

// g.Scalar() returns a new zero-valued Scalar modulo the group order.
func (g *Group) Scalar() gfp.Scalar {
	return gfp.NewScalar(g.order)
}

// g.ScalarBytes() returns the number of bytes of an encoded scalar.
func (g *Group) ScalarBytes() int {
	return g.order.Size()
}

// g.PointBytes(format) returns the number of bytes of a non-identity point encoded in the given format.
func (g *Group) PointBytes(format Format) int {
	return EncodedLen(g.curve, format)
}

// g.ScalarBaseMult(k) returns k·G.
func (g *Group) ScalarBaseMult(k gfp.Scalar) *Point {
	return g.ScalarMult(k, g.Generator())
}

// g.ScalarMult(k, p) returns k·p. The ladder always runs over the full bit length of the group order.
func (g *Group) ScalarMult(k gfp.Scalar, p *Point) *Point {
	if !k.Modulus().Equal(g.order) {
		panic("scalar does not belong to group " + g.name)
	}
	requireSameCurve(g.Identity(), p)
	return new(Point).scalarMult(k.BigInt(), p, g.order.BitLen())
}

// MarshalTo writes the index of the group in SupportedGroups.
func (g *Group) MarshalTo(target codec.Target) {
	target.WriteUint8(groupToIndex(g))
}

// UnmarshalGroup reads a group written by Group.MarshalTo. Use with codec.UnmarshalUsing(...).
func UnmarshalGroup(src codec.Source) *Group {
	index := src.ReadUint8()
	if int(index) >= len(SupportedGroups) {
		panic(fmt.Sprintf("group lookup failed, index: %d", index))
	}
	return SupportedGroups[index]
}

// GroupByName returns the supported group with the given name, or nil.
func GroupByName(name string) *Group {
	for _, g := range SupportedGroups {
		if g.name == name {
			return g
		}
	}
	return nil
}

func groupToIndex(group *Group) byte {
	for i, g := range SupportedGroups {
		if g == group {
			return byte(i)
		}
	}
	panic("group not found in SupportedGroups")
}
