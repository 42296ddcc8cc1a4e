package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/smartcontractkit/ecgfp/internal/crypto/ec"
	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
	"github.com/smartcontractkit/ecgfp/internal/crypto/xof"
)

// parseHex decodes a hex string, with or without the 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

// parseInt accepts decimal, or hex with the 0x prefix.
func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

func parseScalar(g *ec.Group, s string) (gfp.Scalar, error) {
	n, err := parseInt(s)
	if err != nil {
		return nil, err
	}
	return g.Scalar().SetBigInt(n), nil
}

const seedDST = "ecgfp/cli/seed-scalar"

// seedScalar derives a scalar of g from seed. The same seed yields the same scalar for a given curve.
func seedScalar(g *ec.Group, seed string) (gfp.Scalar, error) {
	stream := xof.New(seedDST)
	stream.WriteString(g.Name())
	stream.WriteString(seed)
	return g.Scalar().SetRandom(stream)
}

func parsePoint(g *ec.Group, s string) (*ec.Point, error) {
	data, err := parseHex(s)
	if err != nil {
		return nil, err
	}
	return ec.Decode(g.Curve(), data)
}

// coordinate formats x as a fixed width hex string of the curve's field size.
func coordinate(c *gfp.Curve, x *big.Int) string {
	return hexutil.Encode(x.FillBytes(make([]byte, c.ByteLen())))
}
