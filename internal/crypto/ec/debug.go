//go:build !ecdebug

package ec

// debugChecks enables on-curve assertions around scalar multiplication. Build with -tags ecdebug to turn them on.
const debugChecks = false
