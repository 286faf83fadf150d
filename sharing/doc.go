// Package sharing implements the copy-on-write discipline of the vector model.
//
// A shareable value is in one of three states:
//
//   - Temporary: exactly one owner; the owner may mutate it in place.
//   - Shared(n): n further owners were recorded; writers must copy first.
//   - SharedPermanent: immutable for the life of the process; share and
//     unshare are no-ops and writers must always copy.
//
// The package is the only authority on in-place safety. Code that may return
// one of its inputs, or that mutates an accumulator in a loop, asks
// MayMutateInPlace instead of reasoning about aliasing itself.
//
// The functions accept any value. Values that do not implement Shareable
// pass through unchanged.
//
// Share counts are not atomic. A vector graph is mutated by one logical
// thread at a time; hosts that evaluate concurrently must add their own
// synchronization around these calls.
package sharing
