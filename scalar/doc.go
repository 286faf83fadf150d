// Package scalar defines the element kinds of the vector model and the
// per-element semantics of each kind.
//
// Every kind except Raw has a distinguished NA ("missing") value:
//
//   - Logical:   NALogical (-1); FALSE is 0 and TRUE is 1
//   - Integer:   NAInteger (math.MinInt32)
//   - Double:    NADouble, a NaN with a fixed payload distinct from the NaN
//     produced by arithmetic
//   - Complex:   NAComplex; a value is NA if either part is NADouble
//   - Character: NAString, a sentinel containing a NUL byte
//   - List:      a length-1 atomic vector holding NA
//
// Generic code dispatches through Kind.Ops, a table indexed by kind. Hot
// loops use the typed helpers (IsNADouble, IsNAString, ...) directly.
//
// # Double NA
//
// NADouble is a NaN. Arithmetic on it usually keeps the payload, but that is
// hardware dependent, so ArithDouble checks its operands explicitly:
//
//	scalar.IsNADouble(scalar.ArithDouble(scalar.OpAdd, scalar.NADouble, 1)) // true
//	scalar.IsNADouble(scalar.ArithDouble(scalar.OpDiv, 0, 0))               // false, NaN
package scalar
