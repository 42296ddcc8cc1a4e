package gfp

import "errors"

// ErrInvalidParameters is returned when curve or modulus parameters are rejected.
var ErrInvalidParameters = errors.New("invalid curve parameters")
