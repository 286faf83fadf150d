// Package attr implements the generic attribute store attached to vectors.
//
// The store keeps attributes in insertion order. The attributes that take
// part in vector invariants (dim, names, dimnames) are not kept here; the
// vector holds them in typed fields and exposes them under their reserved
// names. Storing a reserved name in a Store is an error.
//
// Values stored in a Store gain an owner: they are shared on Set and Clone
// and unshared on Remove or replacement.
package attr
