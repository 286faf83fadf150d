package scalar

import "math"

// Logical is a three-valued boolean.
type Logical int8

const (
	// False is the logical FALSE.
	False Logical = 0
	// True is the logical TRUE.
	True Logical = 1
	// NALogical is the logical NA.
	NALogical Logical = -1
)

// LogicalOf converts a Go bool.
func LogicalOf(b bool) Logical {
	if b {
		return True
	}
	return False
}

// String returns "TRUE", "FALSE" or "NA".
func (l Logical) String() string {
	return FormatLogical(l)
}

// NAInteger is the integer NA.
const NAInteger int32 = math.MinInt32

// naDoubleLowWord is the payload that tells NA apart from other NaNs.
const (
	naDoubleBits    uint64 = 0x7FF00000000007A2
	naDoubleLowWord uint32 = 1954
)

// NADouble is the double NA. It is a NaN, but not every NaN is NA.
var NADouble = math.Float64frombits(naDoubleBits)

// NAComplex is the complex NA.
var NAComplex = complex(NADouble, NADouble)

// NAString is the character NA. Character data of the runtime never contains
// NUL bytes, so the sentinel cannot collide with a real string.
const NAString = "\x00NA"

// ScalarNA is implemented by values that can stand for NA inside a list,
// i.e. length-1 atomic vectors.
type ScalarNA interface {
	IsScalarNA() bool
}

// IsNALogical reports whether v is the logical NA.
func IsNALogical(v Logical) bool { return v == NALogical }

// IsNAInteger reports whether v is the integer NA.
func IsNAInteger(v int32) bool { return v == NAInteger }

// IsNADouble reports whether v is the double NA. Ordinary NaN values are not NA.
// Only the low word is compared because hardware may set the quiet bit when
// the NA passes through arithmetic.
func IsNADouble(v float64) bool {
	return v != v && uint32(math.Float64bits(v)) == naDoubleLowWord
}

// IsNaNNotNA reports whether v is a NaN that is not the NA.
func IsNaNNotNA(v float64) bool {
	return v != v && !IsNADouble(v)
}

// IsNAComplex reports whether either part of v is the double NA.
func IsNAComplex(v complex128) bool {
	return IsNADouble(real(v)) || IsNADouble(imag(v))
}

// IsNAString reports whether v is the character NA.
func IsNAString(v string) bool { return v == NAString }

// IsNAElement reports whether a list element stands for NA.
func IsNAElement(v any) bool {
	if s, ok := v.(ScalarNA); ok {
		return s.IsScalarNA()
	}
	return false
}
