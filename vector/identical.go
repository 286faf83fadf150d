package vector

import (
	"math"
	"reflect"
	"slices"

	"github.com/hupe1980/rvec/scalar"
)

// Identical reports whether a and b have the same kind, elements and
// attributes. NA equals NA and NaN equals NaN, but NA and NaN differ.
// Generic attributes are compared regardless of insertion order.
func Identical(a, b *Vector) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.length != b.length || !slices.Equal(a.dims, b.dims) {
		return false
	}
	if !Identical(a.names, b.names) || !Identical(a.dimNames, b.dimNames) {
		return false
	}
	if !identicalAttrs(a, b) {
		return false
	}
	switch x := a.data.(type) {
	case []float64:
		return slices.EqualFunc(x, b.data.([]float64), identicalDouble)
	case []complex128:
		return slices.EqualFunc(x, b.data.([]complex128), func(p, q complex128) bool {
			return identicalDouble(real(p), real(q)) && identicalDouble(imag(p), imag(q))
		})
	case []any:
		return slices.EqualFunc(x, b.data.([]any), identicalValue)
	case []scalar.Logical:
		return slices.Equal(x, b.data.([]scalar.Logical))
	case []int32:
		return slices.Equal(x, b.data.([]int32))
	case []byte:
		return slices.Equal(x, b.data.([]byte))
	case []string:
		return slices.Equal(x, b.data.([]string))
	}
	return false
}

func identicalDouble(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return scalar.IsNADouble(x) == scalar.IsNADouble(y) && math.IsNaN(x) && math.IsNaN(y)
	}
	return x == y
}

func identicalValue(x, y any) bool {
	xv, xok := x.(*Vector)
	yv, yok := y.(*Vector)
	if xok && yok {
		return Identical(xv, yv)
	}
	if xok != yok {
		return false
	}
	return reflect.DeepEqual(x, y)
}

func identicalAttrs(a, b *Vector) bool {
	if a.attrs.Len() != b.attrs.Len() {
		return false
	}
	for name, x := range a.attrs.All() {
		y, ok := b.attrs.Get(name)
		if !ok || !identicalValue(x, y) {
			return false
		}
	}
	return true
}
