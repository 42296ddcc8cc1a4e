package xof

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// Deterministic byte stream based on the SHAKE256 XOF, with domain separation and unique encoding of the inputs.
// Used to derive reproducible scalars, e.g., for self-tests or from a user supplied seed.

var _ io.Reader = &XOF{}

type XOF struct {
	shake      sha3.ShakeHash
	readCalled bool
}

type argType byte

const (
	_ argType = iota
	argTypeInt
	argTypeBytes
	argTypeString
)

// New initializes a stream with the given domain separation tag. Inputs are added with WriteInt(...),
// WriteBytes(...) and WriteString(...) before the first call to Read.
func New(dst string) *XOF {
	h := &XOF{shake: sha3.NewShake256()}
	h.WriteString(dst)
	return h
}

func (h *XOF) write(t argType, data []byte) {
	if h.readCalled {
		panic("cannot write to xof after Read")
	}
	var header [9]byte
	header[0] = byte(t)
	binary.BigEndian.PutUint64(header[1:], uint64(len(data)))
	_, _ = h.shake.Write(header[:])
	_, _ = h.shake.Write(data)
}

// WriteInt absorbs a non-negative integer.
func (h *XOF) WriteInt(value int) {
	if value < 0 {
		panic("xof: negative integer")
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(value))
	h.write(argTypeInt, b[:])
}

func (h *XOF) WriteBytes(data []byte) {
	h.write(argTypeBytes, data)
}

func (h *XOF) WriteString(str string) {
	h.write(argTypeString, []byte(str))
}

// Read squeezes output from the XOF. Later calls continue the stream, writes after the first Read panic. Never
// returns an error.
func (h *XOF) Read(out []byte) (n int, err error) {
	h.readCalled = true
	return h.shake.Read(out)
}
