package coerce

import (
	"math"
	"strconv"

	"github.com/hupe1980/rvec/internal/conv"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
)

// convert returns the element buffer of v converted to kind to.
func convert(v *vector.Vector, to scalar.Kind, w *Warnings) any {
	switch to {
	case scalar.KindRaw:
		return toRaw(v, w)
	case scalar.KindLogical:
		return toLogical(v, w)
	case scalar.KindInteger:
		return toInteger(v, w)
	case scalar.KindDouble:
		return toDouble(v, w)
	case scalar.KindComplex:
		return toComplex(v, w)
	case scalar.KindCharacter:
		return toCharacter(v, w)
	default:
		return toList(v)
	}
}

func data[T any](v *vector.Vector) []T {
	d, _ := vector.Data[T](v)
	return d
}

// mapSlice applies f to every element of src, recording the flag f returns
// at the element's position.
func mapSlice[S, T any](src []S, w *Warnings, f func(S) (T, WarningFlag)) []T {
	out := make([]T, len(src))
	for i, x := range src {
		y, flag := f(x)
		out[i] = y
		if flag != 0 {
			w.add(flag, i)
		}
	}
	return out
}

func plain[S, T any](f func(S) T) func(S) (T, WarningFlag) {
	return func(x S) (T, WarningFlag) { return f(x), 0 }
}

// fromList converts the elements of a list. Length-1 vector elements are
// converted recursively; anything else becomes na, flagged with naFlag.
func fromList[T any](v *vector.Vector, w *Warnings, na T, naFlag WarningFlag, to func(*vector.Vector, *Warnings) []T) []T {
	return mapSlice(data[any](v), w, func(e any) (T, WarningFlag) {
		ev, ok := e.(*vector.Vector)
		if !ok || ev.Len() != 1 {
			return na, naFlag
		}
		var sub Warnings
		return to(ev, &sub)[0], sub.Flags
	})
}

func toLogical(v *vector.Vector, w *Warnings) []scalar.Logical {
	switch v.Kind() {
	case scalar.KindRaw:
		return mapSlice(data[byte](v), w, plain(func(x byte) scalar.Logical { return scalar.LogicalOf(x != 0) }))
	case scalar.KindInteger:
		return mapSlice(data[int32](v), w, plain(func(x int32) scalar.Logical {
			if scalar.IsNAInteger(x) {
				return scalar.NALogical
			}
			return scalar.LogicalOf(x != 0)
		}))
	case scalar.KindDouble:
		return mapSlice(data[float64](v), w, plain(doubleToLogical))
	case scalar.KindComplex:
		return mapSlice(data[complex128](v), w, plain(func(x complex128) scalar.Logical {
			if math.IsNaN(real(x)) || math.IsNaN(imag(x)) {
				return scalar.NALogical
			}
			return scalar.LogicalOf(x != 0)
		}))
	case scalar.KindCharacter:
		return mapSlice(data[string](v), w, plain(func(x string) scalar.Logical {
			l, _ := scalar.ParseLogical(x)
			return l
		}))
	case scalar.KindList:
		return fromList(v, w, scalar.NALogical, 0, toLogical)
	default:
		return data[scalar.Logical](v)
	}
}

func doubleToLogical(x float64) scalar.Logical {
	if math.IsNaN(x) {
		return scalar.NALogical
	}
	return scalar.LogicalOf(x != 0)
}

func toInteger(v *vector.Vector, w *Warnings) []int32 {
	switch v.Kind() {
	case scalar.KindRaw:
		return mapSlice(data[byte](v), w, plain(func(x byte) int32 { return int32(x) }))
	case scalar.KindLogical:
		return mapSlice(data[scalar.Logical](v), w, plain(logicalToInteger))
	case scalar.KindDouble:
		return mapSlice(data[float64](v), w, doubleToInteger)
	case scalar.KindComplex:
		return mapSlice(data[complex128](v), w, func(x complex128) (int32, WarningFlag) {
			if scalar.IsNAComplex(x) {
				return scalar.NAInteger, 0
			}
			r, flag := doubleToInteger(real(x))
			return r, flag | imaginaryFlag(x)
		})
	case scalar.KindCharacter:
		return mapSlice(data[string](v), w, func(x string) (int32, WarningFlag) {
			d, ok := scalar.ParseDouble(x)
			if !ok {
				return scalar.NAInteger, NAIntroduced
			}
			return doubleToInteger(d)
		})
	case scalar.KindList:
		return fromList(v, w, scalar.NAInteger, 0, toInteger)
	default:
		return data[int32](v)
	}
}

func logicalToInteger(x scalar.Logical) int32 {
	if scalar.IsNALogical(x) {
		return scalar.NAInteger
	}
	return int32(x)
}

func doubleToInteger(x float64) (int32, WarningFlag) {
	if math.IsNaN(x) {
		return scalar.NAInteger, 0
	}
	r, ok := conv.Float64ToInt32(x)
	if !ok {
		return scalar.NAInteger, IntegerRange
	}
	return r, 0
}

func imaginaryFlag(x complex128) WarningFlag {
	if imag(x) != 0 && !math.IsNaN(imag(x)) {
		return ImaginaryDiscarded
	}
	return 0
}

func toDouble(v *vector.Vector, w *Warnings) []float64 {
	switch v.Kind() {
	case scalar.KindRaw:
		return mapSlice(data[byte](v), w, plain(func(x byte) float64 { return float64(x) }))
	case scalar.KindLogical:
		return mapSlice(data[scalar.Logical](v), w, plain(logicalToDouble))
	case scalar.KindInteger:
		return mapSlice(data[int32](v), w, plain(integerToDouble))
	case scalar.KindComplex:
		return mapSlice(data[complex128](v), w, func(x complex128) (float64, WarningFlag) {
			if scalar.IsNAComplex(x) {
				return scalar.NADouble, 0
			}
			return real(x), imaginaryFlag(x)
		})
	case scalar.KindCharacter:
		return mapSlice(data[string](v), w, func(x string) (float64, WarningFlag) {
			d, ok := scalar.ParseDouble(x)
			if !ok {
				return scalar.NADouble, NAIntroduced
			}
			return d, 0
		})
	case scalar.KindList:
		return fromList(v, w, scalar.NADouble, 0, toDouble)
	default:
		return data[float64](v)
	}
}

func logicalToDouble(x scalar.Logical) float64 {
	if scalar.IsNALogical(x) {
		return scalar.NADouble
	}
	return float64(x)
}

func integerToDouble(x int32) float64 {
	if scalar.IsNAInteger(x) {
		return scalar.NADouble
	}
	return float64(x)
}

func toComplex(v *vector.Vector, w *Warnings) []complex128 {
	switch v.Kind() {
	case scalar.KindRaw:
		return mapSlice(data[byte](v), w, plain(func(x byte) complex128 { return complex(float64(x), 0) }))
	case scalar.KindLogical:
		return mapSlice(data[scalar.Logical](v), w, plain(func(x scalar.Logical) complex128 {
			if scalar.IsNALogical(x) {
				return scalar.NAComplex
			}
			return complex(float64(x), 0)
		}))
	case scalar.KindInteger:
		return mapSlice(data[int32](v), w, plain(func(x int32) complex128 {
			if scalar.IsNAInteger(x) {
				return scalar.NAComplex
			}
			return complex(float64(x), 0)
		}))
	case scalar.KindDouble:
		return mapSlice(data[float64](v), w, plain(func(x float64) complex128 {
			if scalar.IsNADouble(x) {
				return scalar.NAComplex
			}
			return complex(x, 0)
		}))
	case scalar.KindCharacter:
		return mapSlice(data[string](v), w, func(x string) (complex128, WarningFlag) {
			c, ok := scalar.ParseComplex(x)
			if !ok {
				return scalar.NAComplex, NAIntroduced
			}
			return c, 0
		})
	case scalar.KindList:
		return fromList(v, w, scalar.NAComplex, 0, toComplex)
	default:
		return data[complex128](v)
	}
}

func toCharacter(v *vector.Vector, w *Warnings) []string {
	switch v.Kind() {
	case scalar.KindRaw:
		return mapSlice(data[byte](v), w, plain(scalar.FormatRaw))
	case scalar.KindLogical:
		return mapSlice(data[scalar.Logical](v), w, plain(func(x scalar.Logical) string {
			if scalar.IsNALogical(x) {
				return scalar.NAString
			}
			return scalar.FormatLogical(x)
		}))
	case scalar.KindInteger:
		return mapSlice(data[int32](v), w, plain(func(x int32) string {
			if scalar.IsNAInteger(x) {
				return scalar.NAString
			}
			return strconv.FormatInt(int64(x), 10)
		}))
	case scalar.KindDouble:
		return mapSlice(data[float64](v), w, plain(func(x float64) string {
			if scalar.IsNADouble(x) {
				return scalar.NAString
			}
			return scalar.FormatDouble(x)
		}))
	case scalar.KindComplex:
		return mapSlice(data[complex128](v), w, plain(func(x complex128) string {
			if scalar.IsNAComplex(x) {
				return scalar.NAString
			}
			return scalar.FormatComplex(x)
		}))
	case scalar.KindList:
		return fromList(v, w, scalar.NAString, 0, toCharacter)
	default:
		return data[string](v)
	}
}

func toRaw(v *vector.Vector, w *Warnings) []byte {
	switch v.Kind() {
	case scalar.KindLogical:
		return mapSlice(data[scalar.Logical](v), w, func(x scalar.Logical) (byte, WarningFlag) {
			if scalar.IsNALogical(x) {
				return 0, RawOutOfRange
			}
			return byte(x), 0
		})
	case scalar.KindInteger:
		return mapSlice(data[int32](v), w, integerToRaw)
	case scalar.KindDouble:
		return mapSlice(data[float64](v), w, doubleToRaw)
	case scalar.KindComplex:
		return mapSlice(data[complex128](v), w, func(x complex128) (byte, WarningFlag) {
			if scalar.IsNAComplex(x) {
				return 0, RawOutOfRange
			}
			r, flag := doubleToRaw(real(x))
			return r, flag | imaginaryFlag(x)
		})
	case scalar.KindCharacter:
		return mapSlice(data[string](v), w, func(x string) (byte, WarningFlag) {
			d, ok := scalar.ParseDouble(x)
			if !ok {
				return 0, NAIntroduced | RawOutOfRange
			}
			return doubleToRaw(d)
		})
	case scalar.KindList:
		return fromList(v, w, 0, RawOutOfRange, toRaw)
	default:
		return data[byte](v)
	}
}

func integerToRaw(x int32) (byte, WarningFlag) {
	r, ok := conv.Int32ToRaw(x)
	if !ok {
		return 0, RawOutOfRange
	}
	return r, 0
}

func doubleToRaw(x float64) (byte, WarningFlag) {
	r, ok := conv.Float64ToRaw(x)
	if !ok {
		return 0, RawOutOfRange
	}
	return r, 0
}

// toList wraps every element as a length-1 vector of v's kind.
func toList(v *vector.Vector) []any {
	out := make([]any, v.Len())
	for i, x := range v.Elements() {
		out[i] = wrap(v.Kind(), x)
	}
	return out
}

func wrap(kind scalar.Kind, x any) *vector.Vector {
	complete := !kind.Ops().IsNA(x)
	switch kind {
	case scalar.KindRaw:
		return vector.NewRaw([]byte{x.(byte)})
	case scalar.KindLogical:
		return vector.NewLogical([]scalar.Logical{x.(scalar.Logical)}, complete)
	case scalar.KindInteger:
		return vector.NewInteger([]int32{x.(int32)}, complete)
	case scalar.KindDouble:
		return vector.NewDouble([]float64{x.(float64)}, complete)
	case scalar.KindComplex:
		return vector.NewComplex([]complex128{x.(complex128)}, complete)
	default:
		return vector.NewCharacter([]string{x.(string)}, complete)
	}
}
