// Package assert provides debug-build invariant checks.
//
// Checks are compiled in with the rvecdebug build tag:
//
//	go test -tags rvecdebug ./...
//
// Without the tag Enabled is a false constant and guarded checks are
// eliminated by the compiler.
package assert
