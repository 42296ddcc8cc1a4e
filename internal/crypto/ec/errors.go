package ec

import "errors"

// Input validation errors. Decode and NewPoint wrap them with context; test with errors.Is.
var (
	ErrInvalidEncoding = errors.New("invalid point encoding")
	ErrUnknownTag      = errors.New("unknown point encoding tag")
	ErrTruncated       = errors.New("truncated point encoding")
	ErrNoSquareRoot    = errors.New("x does not yield a point on the curve")
	ErrHybridMismatch  = errors.New("hybrid encoding y does not match its parity hint")
	ErrNotOnCurve      = errors.New("point is not on the curve")
	ErrCoordinateRange = errors.New("coordinate out of range [1, p-1]")
	ErrIdentity        = errors.New("point is the identity")
)

// reason maps an error to a short metric label.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownTag):
		return "unknown_tag"
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrNoSquareRoot):
		return "no_square_root"
	case errors.Is(err, ErrHybridMismatch):
		return "hybrid_mismatch"
	case errors.Is(err, ErrNotOnCurve):
		return "not_on_curve"
	case errors.Is(err, ErrCoordinateRange):
		return "coordinate_range"
	default:
		return "invalid_encoding"
	}
}
