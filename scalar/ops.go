package scalar

import (
	"cmp"
	"fmt"
	"math"
)

// Ops is the per-kind behavior used by code that handles elements generically.
// Values passed to the functions must carry the Go type of the kind: Logical,
// int32, float64, complex128, byte, string, or any for lists.
type Ops struct {
	Kind Kind
	// Accepts reports whether v has the Go type of the kind.
	Accepts func(v any) bool
	// IsNA reports whether v is the kind's NA. Always false for Raw.
	IsNA func(v any) bool
	// NA returns the kind's NA. Raw returns its zero byte.
	NA func() any
	// Default returns the fill value of freshly allocated vectors.
	Default func() any
	// Display formats v for printing.
	Display func(v any) string
	// Equal compares two values; the result is NA if either is NA or NaN.
	Equal func(a, b any) Logical
	// Compare orders two values. ok is false for NA operands and for kinds
	// without an ordering (complex, list).
	Compare func(a, b any) (c int, ok bool)
}

var opsTable = [...]*Ops{
	KindRaw: {
		Kind:    KindRaw,
		Accepts: accepts[byte],
		IsNA:    func(any) bool { return false },
		NA:      func() any { return byte(0) },
		Default: func() any { return byte(0) },
		Display: func(v any) string { return FormatRaw(v.(byte)) },
		Equal:   func(a, b any) Logical { return LogicalOf(a.(byte) == b.(byte)) },
		Compare: func(a, b any) (int, bool) { return cmp.Compare(a.(byte), b.(byte)), true },
	},
	KindLogical: {
		Kind:    KindLogical,
		Accepts: accepts[Logical],
		IsNA:    func(v any) bool { return IsNALogical(v.(Logical)) },
		NA:      func() any { return NALogical },
		Default: func() any { return False },
		Display: func(v any) string { return FormatLogical(v.(Logical)) },
		Equal: func(a, b any) Logical {
			x, y := a.(Logical), b.(Logical)
			if IsNALogical(x) || IsNALogical(y) {
				return NALogical
			}
			return LogicalOf(x == y)
		},
		Compare: func(a, b any) (int, bool) {
			x, y := a.(Logical), b.(Logical)
			if IsNALogical(x) || IsNALogical(y) {
				return 0, false
			}
			return cmp.Compare(x, y), true
		},
	},
	KindInteger: {
		Kind:    KindInteger,
		Accepts: accepts[int32],
		IsNA:    func(v any) bool { return IsNAInteger(v.(int32)) },
		NA:      func() any { return NAInteger },
		Default: func() any { return int32(0) },
		Display: func(v any) string { return FormatInteger(v.(int32)) },
		Equal: func(a, b any) Logical {
			x, y := a.(int32), b.(int32)
			if IsNAInteger(x) || IsNAInteger(y) {
				return NALogical
			}
			return LogicalOf(x == y)
		},
		Compare: func(a, b any) (int, bool) {
			x, y := a.(int32), b.(int32)
			if IsNAInteger(x) || IsNAInteger(y) {
				return 0, false
			}
			return cmp.Compare(x, y), true
		},
	},
	KindDouble: {
		Kind:    KindDouble,
		Accepts: accepts[float64],
		IsNA:    func(v any) bool { return IsNADouble(v.(float64)) },
		NA:      func() any { return NADouble },
		Default: func() any { return float64(0) },
		Display: func(v any) string { return FormatDouble(v.(float64)) },
		Equal: func(a, b any) Logical {
			x, y := a.(float64), b.(float64)
			if math.IsNaN(x) || math.IsNaN(y) {
				return NALogical
			}
			return LogicalOf(x == y)
		},
		Compare: func(a, b any) (int, bool) {
			x, y := a.(float64), b.(float64)
			if math.IsNaN(x) || math.IsNaN(y) {
				return 0, false
			}
			return cmp.Compare(x, y), true
		},
	},
	KindComplex: {
		Kind:    KindComplex,
		Accepts: accepts[complex128],
		IsNA:    func(v any) bool { return IsNAComplex(v.(complex128)) },
		NA:      func() any { return NAComplex },
		Default: func() any { return complex128(0) },
		Display: func(v any) string { return FormatComplex(v.(complex128)) },
		Equal: func(a, b any) Logical {
			x, y := a.(complex128), b.(complex128)
			if hasNaN(x) || hasNaN(y) {
				return NALogical
			}
			return LogicalOf(x == y)
		},
		Compare: func(any, any) (int, bool) { return 0, false },
	},
	KindCharacter: {
		Kind:    KindCharacter,
		Accepts: accepts[string],
		IsNA:    func(v any) bool { return IsNAString(v.(string)) },
		NA:      func() any { return NAString },
		Default: func() any { return "" },
		Display: func(v any) string { return QuoteString(v.(string)) },
		Equal: func(a, b any) Logical {
			x, y := a.(string), b.(string)
			if IsNAString(x) || IsNAString(y) {
				return NALogical
			}
			return LogicalOf(x == y)
		},
		Compare: func(a, b any) (int, bool) {
			x, y := a.(string), b.(string)
			if IsNAString(x) || IsNAString(y) {
				return 0, false
			}
			return cmp.Compare(x, y), true
		},
	},
	KindList: {
		Kind:    KindList,
		Accepts: func(any) bool { return true },
		IsNA:    IsNAElement,
		NA:      func() any { return nil },
		Default: func() any { return nil },
		Display: displayElement,
		Equal:   func(any, any) Logical { return NALogical },
		Compare: func(any, any) (int, bool) { return 0, false },
	},
}

// Ops returns the dispatch entry of k, or nil for KindInvalid.
func (k Kind) Ops() *Ops {
	if !k.IsValid() {
		return nil
	}
	return opsTable[k]
}

func accepts[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

func hasNaN(v complex128) bool {
	return math.IsNaN(real(v)) || math.IsNaN(imag(v))
}

func displayElement(v any) string {
	switch e := v.(type) {
	case nil:
		return "NULL"
	case fmt.Stringer:
		return e.String()
	default:
		return fmt.Sprintf("<%T>", v)
	}
}
