// Package vector implements the vector container of the runtime: a
// fixed-length, homogeneous, optionally named and dimensioned sequence of
// elements of one scalar.Kind.
//
// # Ownership
//
// Vectors take part in copy-on-write through package sharing. A freshly
// created vector is Temporary and may be written in place. Once it is
// shared, Set and the other mutators panic with *ShareStateViolation; the
// caller obtains a writable vector with Writable first:
//
//	w := vector.Writable(v) // v itself if Temporary, otherwise a copy
//	if err := w.Set(0, 1.5); err != nil { ... }
//
// # Completeness
//
// Every vector knows whether it contains NA. IsComplete is exact: writes
// keep it current, and states that cannot be known cheaply (a factory given
// complete == false, an NA overwritten by a value) are resolved by a single
// scan on the next query. Factories trust a complete == true claim; debug
// builds (tag rvecdebug) verify it.
//
// # Attributes
//
// dim, names and dimnames live in typed fields and are validated against
// the vector length. Every other attribute lives in an attr.Store. All of
// them are visible through Attr, SetAttr and AttrNames.
//
// A nil *Vector stands for NULL: it has KindInvalid and length 0.
package vector
