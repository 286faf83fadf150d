package scalar

import "math"

// ArithOp is a binary arithmetic operator.
type ArithOp uint8

const (
	// OpAdd is x + y.
	OpAdd ArithOp = iota
	// OpSub is x - y.
	OpSub
	// OpMul is x * y.
	OpMul
	// OpDiv is x / y.
	OpDiv
	// OpPow is x ^ y.
	OpPow
	// OpMod is x %% y, with the sign of y.
	OpMod
	// OpIntDiv is x %/% y, i.e. floor(x / y).
	OpIntDiv
)

// ArithDouble applies op to two doubles. An NA operand yields NA, never a
// plain NaN. NaN produced by the operation itself (0/0, Inf-Inf) is returned
// as is and is not NA.
//
// The two identities of exponentiation hold even for NA: x^0 is 1 and 1^y is 1.
func ArithDouble(op ArithOp, x, y float64) float64 {
	if op == OpPow && (y == 0 || x == 1) {
		return 1
	}
	if IsNADouble(x) || IsNADouble(y) {
		return NADouble
	}
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpPow:
		return math.Pow(x, y)
	case OpMod:
		if y == 0 {
			return math.NaN()
		}
		return x - math.Floor(x/y)*y
	case OpIntDiv:
		return math.Floor(x / y)
	default:
		return NADouble
	}
}

// ArithInteger applies op to two integers. NA operands yield NA. A result
// outside the integer range yields NA with overflow set. Division and
// exponentiation produce doubles in the runtime; callers promote the
// operands first, and ArithInteger returns NA for them.
func ArithInteger(op ArithOp, x, y int32) (r int32, overflow bool) {
	if IsNAInteger(x) || IsNAInteger(y) {
		return NAInteger, false
	}
	a, b := int64(x), int64(y)
	var wide int64
	switch op {
	case OpAdd:
		wide = a + b
	case OpSub:
		wide = a - b
	case OpMul:
		wide = a * b
	case OpMod:
		if b == 0 {
			return NAInteger, false
		}
		wide = a % b
		if wide != 0 && (wide < 0) != (b < 0) {
			wide += b
		}
	case OpIntDiv:
		if b == 0 {
			return NAInteger, false
		}
		wide = int64(math.Floor(float64(a) / float64(b)))
	default:
		return NAInteger, false
	}
	if wide > math.MaxInt32 || wide <= math.MinInt32 {
		return NAInteger, true
	}
	return int32(wide), false
}
