// Package coerce implements the coercion lattice: picking the widest common
// kind of mixed operands and converting vectors between kinds.
//
// Casts never fail because an element cannot be converted. Such elements
// become NA (or 0 for raw targets) and are reported through Warnings, which
// callers surface as the host language's coercion warnings:
//
//	d, w, err := coerce.Cast(v, scalar.KindDouble)
//	if err != nil {
//		return err
//	}
//	for _, msg := range w.Messages() {
//		log.Warn(msg)
//	}
//
// Dimensions and names travel with the result by default; generic
// attributes only when WithAttributes is given.
package coerce
