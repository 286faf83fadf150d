package vector

import (
	"slices"

	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/sharing"
)

func kindOfData(data any) scalar.Kind {
	switch data.(type) {
	case []byte:
		return scalar.KindRaw
	case []scalar.Logical:
		return scalar.KindLogical
	case []int32:
		return scalar.KindInteger
	case []float64:
		return scalar.KindDouble
	case []complex128:
		return scalar.KindComplex
	case []string:
		return scalar.KindCharacter
	case []any:
		return scalar.KindList
	default:
		return scalar.KindInvalid
	}
}

func kindOfValue(v any) scalar.Kind {
	switch v.(type) {
	case byte:
		return scalar.KindRaw
	case scalar.Logical:
		return scalar.KindLogical
	case int32:
		return scalar.KindInteger
	case float64:
		return scalar.KindDouble
	case complex128:
		return scalar.KindComplex
	case string:
		return scalar.KindCharacter
	default:
		return scalar.KindInvalid
	}
}

func makeData(kind scalar.Kind, n int) any {
	switch kind {
	case scalar.KindRaw:
		return make([]byte, n)
	case scalar.KindLogical:
		return make([]scalar.Logical, n)
	case scalar.KindInteger:
		return make([]int32, n)
	case scalar.KindDouble:
		return make([]float64, n)
	case scalar.KindComplex:
		return make([]complex128, n)
	case scalar.KindCharacter:
		return make([]string, n)
	case scalar.KindList:
		return make([]any, n)
	default:
		return nil
	}
}

func isNilSlice(data any) bool {
	switch d := data.(type) {
	case []byte:
		return d == nil
	case []scalar.Logical:
		return d == nil
	case []int32:
		return d == nil
	case []float64:
		return d == nil
	case []complex128:
		return d == nil
	case []string:
		return d == nil
	case []any:
		return d == nil
	default:
		return false
	}
}

func lengthOf(data any) int {
	switch d := data.(type) {
	case []byte:
		return len(d)
	case []scalar.Logical:
		return len(d)
	case []int32:
		return len(d)
	case []float64:
		return len(d)
	case []complex128:
		return len(d)
	case []string:
		return len(d)
	case []any:
		return len(d)
	default:
		return 0
	}
}

// fillNA sets every element from index from onwards to NA. Raw and list
// buffers are filled with zero and NULL.
func fillNA(data any, from int) {
	switch d := data.(type) {
	case []byte:
		clear(d[from:])
	case []scalar.Logical:
		fill(d[from:], scalar.NALogical)
	case []int32:
		fill(d[from:], scalar.NAInteger)
	case []float64:
		fill(d[from:], scalar.NADouble)
	case []complex128:
		fill(d[from:], scalar.NAComplex)
	case []string:
		fill(d[from:], scalar.NAString)
	case []any:
		clear(d[from:])
	}
}

func fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}

// eachNA calls yield with the index of every NA element until yield
// returns false.
func eachNA(data any, yield func(int) bool) {
	switch d := data.(type) {
	case []scalar.Logical:
		scanNA(d, scalar.IsNALogical, yield)
	case []int32:
		scanNA(d, scalar.IsNAInteger, yield)
	case []float64:
		scanNA(d, scalar.IsNADouble, yield)
	case []complex128:
		scanNA(d, scalar.IsNAComplex, yield)
	case []string:
		scanNA(d, scalar.IsNAString, yield)
	case []any:
		scanNA(d, scalar.IsNAElement, yield)
	}
}

func scanNA[T any](s []T, isNA func(T) bool, yield func(int) bool) {
	for i, x := range s {
		if isNA(x) && !yield(i) {
			return
		}
	}
}

func (v *Vector) elementIsNA(i int) bool {
	switch d := v.data.(type) {
	case []scalar.Logical:
		return scalar.IsNALogical(d[i])
	case []int32:
		return scalar.IsNAInteger(d[i])
	case []float64:
		return scalar.IsNADouble(d[i])
	case []complex128:
		return scalar.IsNAComplex(d[i])
	case []string:
		return scalar.IsNAString(d[i])
	case []any:
		return scalar.IsNAElement(d[i])
	default:
		return false
	}
}

// cloneData deep-copies the element buffer. List elements gain the clone as
// an owner.
func cloneData(data any) any {
	switch d := data.(type) {
	case []byte:
		return slices.Clone(d)
	case []scalar.Logical:
		return slices.Clone(d)
	case []int32:
		return slices.Clone(d)
	case []float64:
		return slices.Clone(d)
	case []complex128:
		return slices.Clone(d)
	case []string:
		return slices.Clone(d)
	case []any:
		c := slices.Clone(d)
		for _, e := range c {
			sharing.Share(e)
		}
		return c
	default:
		return nil
	}
}

// resizeData copies data into a buffer of length n. Growth pads with NA when
// fillNA is set or the source is empty, otherwise it recycles the source.
func resizeData(data any, n int, fillNA bool) any {
	switch d := data.(type) {
	case []byte:
		return resizeSlice(d, n, fillNA, 0)
	case []scalar.Logical:
		return resizeSlice(d, n, fillNA, scalar.NALogical)
	case []int32:
		return resizeSlice(d, n, fillNA, scalar.NAInteger)
	case []float64:
		return resizeSlice(d, n, fillNA, scalar.NADouble)
	case []complex128:
		return resizeSlice(d, n, fillNA, scalar.NAComplex)
	case []string:
		return resizeSlice(d, n, fillNA, scalar.NAString)
	case []any:
		r := resizeSlice(d, n, fillNA, nil)
		for _, e := range r {
			sharing.Share(e)
		}
		return r
	default:
		return nil
	}
}

func resizeSlice[T any](src []T, n int, fillNA bool, na T) []T {
	dst := make([]T, n)
	copied := copy(dst, src)
	if copied == n {
		return dst
	}
	if fillNA || len(src) == 0 {
		fill(dst[copied:], na)
		return dst
	}
	for i := copied; i < n; i++ {
		dst[i] = src[i%len(src)]
	}
	return dst
}

func getElem(data any, i int) any {
	switch d := data.(type) {
	case []byte:
		return d[i]
	case []scalar.Logical:
		return d[i]
	case []int32:
		return d[i]
	case []float64:
		return d[i]
	case []complex128:
		return d[i]
	case []string:
		return d[i]
	case []any:
		return d[i]
	default:
		return nil
	}
}

// setElem stores x at i and keeps the completeness cache current. The caller
// has checked the index and that x has the element type.
func (v *Vector) setElem(i int, x any) {
	switch d := v.data.(type) {
	case []byte:
		d[i] = x.(byte)
	case []scalar.Logical:
		store(v, d, i, x.(scalar.Logical), scalar.IsNALogical)
	case []int32:
		store(v, d, i, x.(int32), scalar.IsNAInteger)
	case []float64:
		store(v, d, i, x.(float64), scalar.IsNADouble)
	case []complex128:
		store(v, d, i, x.(complex128), scalar.IsNAComplex)
	case []string:
		store(v, d, i, x.(string), scalar.IsNAString)
	case []any:
		old := d[i]
		store(v, d, i, sharing.Share(x), scalar.IsNAElement)
		sharing.Unshare(old)
	}
}

func store[T any](v *Vector, s []T, i int, x T, isNA func(T) bool) {
	wasNA := isNA(s[i])
	s[i] = x
	switch {
	case isNA(x):
		v.complete = completeNo
	case wasNA:
		v.complete = completeUnknown
	}
}
