package vector

import (
	"fmt"
	"slices"

	"github.com/hupe1980/rvec/scalar"
)

// Get returns element i boxed in its Go type (scalar.Logical, int32,
// float64, complex128, byte, string, or the list element).
func (v *Vector) Get(i int) (any, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return getElem(v.data, i), nil
}

// Set stores value at i. The vector must be Temporary; see Writable.
func (v *Vector) Set(i int, value any) error {
	v.checkWritable("set")
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if !v.kind.Ops().Accepts(value) {
		return &KindMismatchError{Op: "set", Expected: v.kind, Actual: kindOfValue(value)}
	}
	v.setElem(i, value)
	return nil
}

// TransferElement copies element fromIndex of from into toIndex of v. Both
// vectors must have the same kind; no coercion takes place. v must be
// Temporary.
func (v *Vector) TransferElement(toIndex int, from *Vector, fromIndex int) error {
	v.checkWritable("transfer")
	if from.Kind() != v.kind {
		return &KindMismatchError{Op: "transfer", Expected: v.kind, Actual: from.Kind()}
	}
	if err := v.checkIndex(toIndex); err != nil {
		return err
	}
	if err := from.checkIndex(fromIndex); err != nil {
		return err
	}
	v.setElem(toIndex, getElem(from.data, fromIndex))
	return nil
}

func (v *Vector) checkIndex(i int) error {
	if i < 0 || i >= v.Len() {
		return &IndexError{Index: i, Length: v.Len()}
	}
	return nil
}

// At returns element i of v as T, which must be the element type of v's kind.
func At[T any](v *Vector, i int) (T, error) {
	var zero T
	data, err := Data[T](v)
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(data) {
		return zero, &IndexError{Index: i, Length: len(data)}
	}
	return data[i], nil
}

// Data returns the element buffer without copying. The slice must be treated
// as read-only unless v is Temporary, and writers must call
// InvalidateCompleteness afterwards.
func Data[T any](v *Vector) ([]T, error) {
	if v == nil {
		return nil, nil
	}
	d, ok := v.data.([]T)
	if !ok {
		var zero T
		return nil, &KindMismatchError{Op: fmt.Sprintf("data %T", zero), Expected: v.kind, Actual: kindOfData([]T(nil))}
	}
	return d, nil
}

// DataCopy returns a copy of the element buffer.
func DataCopy[T any](v *Vector) ([]T, error) {
	d, err := Data[T](v)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d), nil
}

// Elements returns every element boxed, in order.
func (v *Vector) Elements() []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = getElem(v.data, i)
	}
	return out
}

// Copy returns a Temporary deep copy of the element buffer. names, dimnames
// and attribute values are shared with v rather than copied; they are never
// mutated in place while shared.
func (v *Vector) Copy() *Vector {
	if v == nil {
		return nil
	}
	c := &Vector{
		kind:     v.kind,
		length:   v.length,
		data:     cloneData(v.data),
		complete: v.complete,
		dims:     slices.Clone(v.dims),
		names:    shareVector(v.names),
		dimNames: shareVector(v.dimNames),
	}
	if v.attrs.Len() > 0 {
		c.attrs = v.attrs.Clone()
	}
	return c
}

// Resize returns a new vector of length n. Growing pads with NA when fillNA
// is set, otherwise it recycles v from the start; an empty vector always
// pads with NA, and lists pad with NULL. names are kept (padded with "");
// dim, dimnames and other attributes are dropped.
func (v *Vector) Resize(n int, fillNA bool) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("resize to %d: %w", n, ErrInvalidLength)
	}
	r := &Vector{
		kind:   v.kind,
		length: n,
		data:   resizeData(v.data, n, fillNA),
	}
	r.complete = v.resizedCompleteness(n, fillNA)
	if v.names != nil {
		names, _ := Data[string](v.names)
		r.names = shareVector(NewCharacter(resizeSlice(names, n, true, ""), Incomplete))
	}
	return r, nil
}

func (v *Vector) resizedCompleteness(n int, fillNA bool) completeness {
	switch {
	case v.kind == scalar.KindRaw || n == 0:
		return completeYes
	case n == v.length:
		return v.complete
	case n < v.length:
		if v.complete == completeYes {
			return completeYes
		}
		return completeUnknown
	case (fillNA || v.length == 0) && v.kind != scalar.KindList:
		return completeNo
	default:
		return v.complete
	}
}

// WithNewDimensions returns a vector with dims that shares v's element
// buffer. Since both then alias one buffer, v and the result each gain an
// owner and neither may be mutated in place afterwards. names and dimnames
// are dropped; other attributes are kept.
func (v *Vector) WithNewDimensions(dims []int) (*Vector, error) {
	if err := validateDims(dims, v.length); err != nil {
		return nil, err
	}
	r := &Vector{
		kind:     v.kind,
		length:   v.length,
		data:     v.data,
		complete: v.complete,
		dims:     slices.Clone(dims),
	}
	if v.attrs.Len() > 0 {
		r.attrs = v.attrs.Clone()
	}
	v.IncRefCount()
	r.IncRefCount()
	return r, nil
}

func shareVector(v *Vector) *Vector {
	v.IncRefCount()
	return v
}
