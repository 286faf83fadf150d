package conv

import (
	"fmt"
	"math"
)

// IntToInt32 converts int to int32 safely.
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Float64ToInt32 truncates v toward zero. ok is false for NaN and for values
// whose truncation does not fit an int32 or equals math.MinInt32, which the
// runtime reserves for NA.
func Float64ToInt32(v float64) (r int32, ok bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	t := math.Trunc(v)
	if t <= math.MinInt32 || t > math.MaxInt32 {
		return 0, false
	}
	return int32(t), true
}

// Float64ToRaw truncates v toward zero. ok is false unless the result is in
// 0..255.
func Float64ToRaw(v float64) (r byte, ok bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	t := math.Trunc(v)
	if t < 0 || t > math.MaxUint8 {
		return 0, false
	}
	return byte(t), true
}

// Int32ToRaw converts v to a byte. ok is false unless v is in 0..255.
func Int32ToRaw(v int32) (r byte, ok bool) {
	if v < 0 || v > math.MaxUint8 {
		return 0, false
	}
	return byte(v), true
}
