//go:build ecdebug

package ec

const debugChecks = true
