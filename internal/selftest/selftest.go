// Package selftest runs known-answer and consistency checks of the point engine against every supported group.
package selftest

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"filippo.io/nistec"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/ecgfp/internal/crypto/xof"
	"github.com/smartcontractkit/libocr/commontypes"
)

type check struct {
	name string
	run  func(g *ec.Group) error
}

var checks = []check{
	{"generator", checkGenerator},
	{"order", checkOrder},
	{"double", checkDouble},
	{"encoding", checkEncoding},
	{"known-answer", checkKnownAnswer},
	{"reference", checkReference},
}

// Run executes all checks against the given groups, or against ec.SupportedGroups if none are given. Every check runs,
// a failing check does not stop the others. The returned error joins all failures.
func Run(lggr commontypes.Logger, groups ...*ec.Group) error {
	if len(groups) == 0 {
		groups = ec.SupportedGroups
	}

	var errs []error
	for _, g := range groups {
		failed := 0
		for _, c := range checks {
			if err := c.run(g); err != nil {
				failed++
				errs = append(errs, fmt.Errorf("%s: %s: %w", g.Name(), c.name, err))
				lggr.Error("self-test check failed", commontypes.LogFields{"curve": g.Name(), "check": c.name, "err": err})
				continue
			}
			lggr.Debug("self-test check passed", commontypes.LogFields{"curve": g.Name(), "check": c.name})
		}
		lggr.Info("self-test finished", commontypes.LogFields{"curve": g.Name(), "checks": len(checks), "failed": failed})
	}
	return errors.Join(errs...)
}

var errMismatch = errors.New("result mismatch")

func checkGenerator(g *ec.Group) error {
	G := g.Generator()
	if !G.OnTheCurve() {
		return ec.ErrNotOnCurve
	}
	if G.IsIdentity() {
		return ec.ErrIdentity
	}
	return nil
}

func checkOrder(g *ec.Group) error {
	n := g.Order().Int()
	if !new(ec.Point).ScalarMult(n, g.Generator()).IsIdentity() {
		return fmt.Errorf("%w: n·G is not the identity", errMismatch)
	}
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	negG := new(ec.Point).Negate(g.Generator())
	if !new(ec.Point).ScalarMult(nMinus1, g.Generator()).Equal(negG) {
		return fmt.Errorf("%w: (n-1)·G is not -G", errMismatch)
	}
	return nil
}

func checkDouble(g *ec.Group) error {
	G := g.Generator()
	twoG := new(ec.Point).Double(G)
	if !twoG.Equal(new(ec.Point).Add(G, G)) {
		return fmt.Errorf("%w: 2·G differs from G+G", errMismatch)
	}
	x, y, err := G.Affine()
	if err != nil {
		return err
	}
	if !twoG.Equal(new(ec.Point).AddAffine(G, g.Curve().NewElement(x), g.Curve().NewElement(y))) {
		return fmt.Errorf("%w: 2·G differs from mixed G+G", errMismatch)
	}
	threeG := new(ec.Point).Add(twoG, G)
	if !threeG.Equal(g.ScalarBaseMult(g.Scalar().SetUint(3))) {
		return fmt.Errorf("%w: 3·G differs from 2·G+G", errMismatch)
	}
	if !threeG.OnTheCurve() {
		return ec.ErrNotOnCurve
	}
	return nil
}

func checkEncoding(g *ec.Group) error {
	P := g.ScalarBaseMult(g.Scalar().SetUint(7))
	for _, format := range []ec.Format{ec.Uncompressed, ec.Compressed, ec.Hybrid} {
		data := P.Encode(format)
		if len(data) != g.PointBytes(format) {
			return fmt.Errorf("%w: %s encoding has %d bytes", errMismatch, format, len(data))
		}
		decoded, err := ec.Decode(g.Curve(), data)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		if !decoded.Equal(P) {
			return fmt.Errorf("%w: %s round trip", errMismatch, format)
		}
	}
	O, err := ec.Decode(g.Curve(), g.Identity().Encode(ec.Compressed))
	if err != nil {
		return err
	}
	if !O.IsIdentity() {
		return fmt.Errorf("%w: identity round trip", errMismatch)
	}
	return nil
}

// 2·G on P-256.
var p256TwoG = []byte{
	0x04,
	0x7c, 0xf2, 0x7b, 0x18, 0x8d, 0x03, 0x4f, 0x7e, 0x8a, 0x52, 0x38, 0x03, 0x04, 0xb5, 0x1a, 0xc3,
	0xc0, 0x89, 0x69, 0xe2, 0x77, 0xf2, 0x1b, 0x35, 0xa6, 0x0b, 0x48, 0xfc, 0x47, 0x66, 0x99, 0x78,
	0x07, 0x77, 0x55, 0x10, 0xdb, 0x8e, 0xd0, 0x40, 0x29, 0x3d, 0x9a, 0xc6, 0x9f, 0x74, 0x30, 0xdb,
	0xba, 0x7d, 0xad, 0xe6, 0x3c, 0xe9, 0x82, 0x29, 0x9e, 0x04, 0xb7, 0x9d, 0x22, 0x78, 0x73, 0xd1,
}

func checkKnownAnswer(g *ec.Group) error {
	if g != ec.P256 {
		return nil
	}
	if !bytes.Equal(p256TwoG, new(ec.Point).Double(g.Generator()).Encode(ec.Uncompressed)) {
		return fmt.Errorf("%w: 2·G", errMismatch)
	}
	return nil
}

// referenceBaseMult computes k·G with an independent implementation and returns the uncompressed encoding.
type referenceBaseMult func(k []byte) ([]byte, error)

func nistecBaseMult[T any, P interface {
	*T
	ScalarBaseMult([]byte) (*T, error)
	Bytes() []byte
}](newPoint func() P) referenceBaseMult {
	return func(k []byte) ([]byte, error) {
		r, err := newPoint().ScalarBaseMult(k)
		if err != nil {
			return nil, err
		}
		return P(r).Bytes(), nil
	}
}

func secp256k1BaseMult(k []byte) ([]byte, error) {
	x, y := secp256k1.S256().ScalarBaseMult(k)
	if x.Sign() == 0 && y.Sign() == 0 {
		return []byte{0}, nil
	}
	out := make([]byte, 65)
	out[0] = 0x04
	x.FillBytes(out[1:33])
	y.FillBytes(out[33:])
	return out, nil
}

func reference(g *ec.Group) referenceBaseMult {
	switch g {
	case ec.P224:
		return nistecBaseMult(nistec.NewP224Point)
	case ec.P256:
		return nistecBaseMult(nistec.NewP256Point)
	case ec.P384:
		return nistecBaseMult(nistec.NewP384Point)
	case ec.P521:
		return nistecBaseMult(nistec.NewP521Point)
	case ec.Secp256k1:
		return secp256k1BaseMult
	}
	return nil
}

const referenceDST = "ecgfp/selftest/reference-scalars"

// referenceScalars returns a fixed set of scalars covering small values, values close to the order, dense bit
// patterns and a few pseudo-random values derived from the group name.
func referenceScalars(g *ec.Group) [][]byte {
	n := g.Order().Int()
	values := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		new(big.Int).Sub(n, big.NewInt(2)),
		new(big.Int).Sub(n, big.NewInt(1)),
		new(big.Int).Rsh(n, 1),
	}
	for _, pattern := range []byte{0x55, 0xa5, 0xff} {
		values = append(values, new(big.Int).SetBytes(bytes.Repeat([]byte{pattern}, g.ScalarBytes())))
	}

	out := make([][]byte, 0, len(values)+4)
	for _, v := range values {
		out = append(out, g.Scalar().SetBigInt(v).Bytes())
	}

	stream := xof.New(referenceDST)
	stream.WriteString(g.Name())
	for range 4 {
		k, err := g.Scalar().SetRandom(stream)
		if err != nil {
			panic(err)
		}
		out = append(out, k.Bytes())
	}
	return out
}

func checkReference(g *ec.Group) error {
	ref := reference(g)
	if ref == nil {
		return nil
	}
	for _, k := range referenceScalars(g) {
		expected, err := ref(k)
		if err != nil {
			return err
		}
		s, err := g.Scalar().SetBytes(k)
		if err != nil {
			return err
		}
		if !bytes.Equal(expected, g.ScalarBaseMult(s).Encode(ec.Uncompressed)) {
			return fmt.Errorf("%w: k·G for k = %x", errMismatch, k)
		}
	}
	return nil
}
