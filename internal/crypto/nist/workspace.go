package nist

import "math/big"

// Workspace is scratch memory for the reduction routines, measured in 32-bit words. It grows on demand and is
// reused across calls. A Workspace must not be used by more than one goroutine at a time.
type Workspace struct {
	words []uint32
}

// NewWorkspace returns a Workspace with room for size 32-bit words.
func NewWorkspace(size int) *Workspace {
	return &Workspace{make([]uint32, size)}
}

// Cap returns the number of 32-bit words the workspace holds without growing.
func (ws *Workspace) Cap() int {
	return cap(ws.words)
}

// load returns the first n words of the workspace, holding the magnitude of x as little-endian 32-bit words.
func (ws *Workspace) load(x *big.Int, n int) []uint32 {
	if cap(ws.words) < n {
		ws.words = make([]uint32, n)
	}
	w := ws.words[:n]
	load32(w, x)
	return w
}
