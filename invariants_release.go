//go:build !corvid_debug

package corvid

// assertInvariants is a no-op in release builds; see invariants_debug.go.
func assertInvariants(pos *Position) {}
