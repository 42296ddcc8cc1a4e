package ec

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/ecgfp/internal/crypto/gfp"
)

// Format selects a SEC1 point encoding.
type Format int

const (
	Uncompressed Format = iota // 0x04 || x || y
	Compressed                 // 0x02|parity(y) || x
	Hybrid                     // 0x06|parity(y) || x || y
)

// SEC 1, Section 2.3.3
const (
	tagIdentity     = 0x00
	tagCompressed   = 0x02
	tagUncompressed = 0x04
	tagHybrid       = 0x06
)

func (f Format) String() string {
	switch f {
	case Uncompressed:
		return "uncompressed"
	case Compressed:
		return "compressed"
	case Hybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{Uncompressed, Compressed, Hybrid} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown point format %q", s)
}

// EncodedLen returns the length of a non-identity point of curve c in format f.
func EncodedLen(c *gfp.Curve, f Format) int {
	if f == Compressed {
		return 1 + c.ByteLen()
	}
	return 1 + 2*c.ByteLen()
}

// v.Encode(format) returns the SEC1 encoding of v. The identity encodes as the single byte 0x00.
func (v *Point) Encode(format Format) []byte {
	x, y, err := v.Affine()
	if err != nil {
		return []byte{tagIdentity}
	}

	c := v.curve
	n := c.ByteLen()
	out := make([]byte, EncodedLen(c, format))
	x.FillBytes(out[1 : 1+n])

	parity := byte(y.Bit(0))
	switch format {
	case Compressed:
		out[0] = tagCompressed | parity
		return out
	case Uncompressed:
		out[0] = tagUncompressed
	case Hybrid:
		out[0] = tagHybrid | parity
	default:
		panic(fmt.Sprintf("unsupported point format %d", int(format)))
	}
	y.FillBytes(out[1+n:])
	return out
}

// Decode parses a SEC1 encoded point of curve c. The buffer must have exactly the length implied by its tag byte.
// Decoded points are checked against the curve equation. Errors wrap the sentinel errors of this package.
func Decode(c *gfp.Curve, data []byte) (*Point, error) {
	p, err := decode(c, data)
	if err != nil {
		decodeFailures.WithLabelValues(c.Name(), reason(err)).Inc()
		return nil, fmt.Errorf("failed to decode %s point: %w", c.Name(), err)
	}
	return p, nil
}

func decode(c *gfp.Curve, data []byte) (*Point, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrTruncated)
	}

	tag := data[0]
	var format Format
	switch tag {
	case tagIdentity:
		if len(data) != 1 {
			return nil, fmt.Errorf("%w: identity with %d trailing bytes", ErrInvalidEncoding, len(data)-1)
		}
		return NewIdentity(c), nil
	case tagCompressed, tagCompressed | 1:
		format = Compressed
	case tagUncompressed:
		format = Uncompressed
	case tagHybrid, tagHybrid | 1:
		format = Hybrid
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownTag, tag)
	}

	if want := EncodedLen(c, format); len(data) != want {
		if len(data) < want {
			return nil, fmt.Errorf("%w: %s point needs %d bytes, got %d", ErrTruncated, format, want, len(data))
		}
		return nil, fmt.Errorf("%w: %s point needs %d bytes, got %d", ErrInvalidEncoding, format, want, len(data))
	}

	n := c.ByteLen()
	x := new(big.Int).SetBytes(data[1 : 1+n])
	var y *big.Int
	switch format {
	case Compressed:
		var err error
		if y, err = decompress(c, x, uint(tag&1)); err != nil {
			return nil, err
		}
	case Uncompressed:
		y = new(big.Int).SetBytes(data[1+n:])
	case Hybrid:
		y = new(big.Int).SetBytes(data[1+n:])
		expected, err := decompress(c, x, uint(tag&1))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrHybridMismatch, err)
		}
		if expected.Cmp(y) != 0 {
			return nil, ErrHybridMismatch
		}
	}

	p, err := NewPoint(c, x, y)
	if err != nil {
		return nil, err
	}
	if !p.OnTheCurve() {
		return nil, ErrNotOnCurve
	}
	return p, nil
}

// decompress returns the y with the given parity such that (x, y) satisfies the curve equation.
func decompress(c *gfp.Curve, x *big.Int, parity uint) (*big.Int, error) {
	if !inRange(c, x) {
		return nil, fmt.Errorf("%w: x", ErrCoordinateRange)
	}
	ws := c.AcquireWorkspace()
	defer c.ReleaseWorkspace(ws)

	// y² = x³ + a·x + b
	var ex, rhs, t gfp.Element
	c.ToRep(&ex, x)
	c.Sqr(&rhs, &ex, ws)
	c.Mul(&rhs, &rhs, &ex, ws)
	c.Mul(&t, c.A(), &ex, ws)
	c.Add(&rhs, &rhs, &t)
	c.Add(&rhs, &rhs, c.B())

	root, ok := c.Sqrt(&t, &rhs)
	if !ok {
		return nil, ErrNoSquareRoot
	}
	y := c.FromRep(root)
	if y.Bit(0) != parity {
		if y.Sign() == 0 {
			return nil, fmt.Errorf("%w: y = 0 has no odd root", ErrInvalidEncoding)
		}
		y.Sub(c.P(), y)
	}
	return y, nil
}
