package gfp

import (
	"math/big"

	"github.com/smartcontractkit/ecgfp/internal/crypto/nist"
)

// Workspace is caller-owned scratch memory for curve arithmetic. A Workspace must not be used by more than one
// goroutine at a time. Obtain one from Curve.NewWorkspace or borrow one with Curve.AcquireWorkspace.
type Workspace struct {
	words *nist.Workspace
	t, u  big.Int
}

// NewWorkspace returns a workspace sized for the curve's reduction routine.
func (c *Curve) NewWorkspace() *Workspace {
	return &Workspace{words: nist.NewWorkspace(c.WorkspaceSize())}
}

// WorkspaceSize returns the minimum number of 32-bit scratch words the curve's reduction routine needs.
func (c *Curve) WorkspaceSize() int {
	if c.prime != nil {
		return c.prime.WorkspaceSize()
	}
	return 2 * ((c.bitLen + 31) / 32)
}

// AcquireWorkspace borrows a workspace from the curve's pool. Return it with ReleaseWorkspace.
func (c *Curve) AcquireWorkspace() *Workspace {
	return c.pool.Get().(*Workspace)
}

// ReleaseWorkspace returns a workspace obtained from AcquireWorkspace to the pool.
func (c *Curve) ReleaseWorkspace(ws *Workspace) {
	c.pool.Put(ws)
}
