package vector

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/rvec/attr"
	"github.com/hupe1980/rvec/internal/assert"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/sharing"
)

// Completeness claims accepted by the factories.
const (
	// Complete asserts that the data holds no NA.
	Complete = true
	// Incomplete makes no claim; the vector scans on demand.
	Incomplete = false
)

type completeness uint8

const (
	completeUnknown completeness = iota
	completeYes
	completeNo
)

// Vector is a homogeneous sequence of elements of one kind.
//
// The element buffer is one of []scalar.Logical, []int32, []float64,
// []complex128, []byte, []string or []any (lists), matching Kind.
type Vector struct {
	share    sharing.Counter
	kind     scalar.Kind
	length   int
	data     any
	complete completeness
	dims     []int
	names    *Vector
	dimNames *Vector
	attrs    *attr.Store
}

var _ sharing.Shareable = (*Vector)(nil)

// Create builds a vector of kind from data. data must have the Go slice type
// of kind and is owned by the vector afterwards; list elements are shared.
// dims and names are optional.
func Create(kind scalar.Kind, data any, complete bool, dims []int, names *Vector) (*Vector, error) {
	if !kind.IsValid() {
		return nil, &KindMismatchError{Op: "create", Expected: kind, Actual: scalar.KindInvalid}
	}
	if actual := kindOfData(data); actual != kind {
		return nil, &KindMismatchError{Op: "create", Expected: kind, Actual: actual}
	}
	v := newVector(kind, data, complete)
	if dims != nil {
		if err := validateDims(dims, v.length); err != nil {
			return nil, err
		}
		v.dims = append([]int(nil), dims...)
	}
	if names != nil {
		if err := v.SetNames(names); err != nil {
			return nil, err
		}
	}
	if elems, ok := v.data.([]any); ok {
		for _, e := range elems {
			sharing.Share(e)
		}
	}
	return v, nil
}

// Empty returns a complete vector of length n filled with the kind's default
// value (FALSE, 0, "" or NULL).
func Empty(kind scalar.Kind, n int) (*Vector, error) {
	if !kind.IsValid() {
		return nil, &KindMismatchError{Op: "empty", Expected: kind, Actual: scalar.KindInvalid}
	}
	if n < 0 {
		return nil, fmt.Errorf("empty %s vector of length %d: %w", kind, n, ErrInvalidLength)
	}
	return newVector(kind, makeData(kind, n), Complete), nil
}

// NA returns a vector of length n holding only NA. Raw vectors hold zeros.
func NA(kind scalar.Kind, n int) (*Vector, error) {
	v, err := Empty(kind, n)
	if err != nil {
		return nil, err
	}
	if kind.HasNA() && kind != scalar.KindList && n > 0 {
		fillNA(v.data, 0)
		v.complete = completeNo
	}
	return v, nil
}

// NewLogical wraps data as a logical vector.
func NewLogical(data []scalar.Logical, complete bool) *Vector {
	return newVector(scalar.KindLogical, data, complete)
}

// NewInteger wraps data as an integer vector.
func NewInteger(data []int32, complete bool) *Vector {
	return newVector(scalar.KindInteger, data, complete)
}

// NewDouble wraps data as a double vector.
func NewDouble(data []float64, complete bool) *Vector {
	return newVector(scalar.KindDouble, data, complete)
}

// NewComplex wraps data as a complex vector.
func NewComplex(data []complex128, complete bool) *Vector {
	return newVector(scalar.KindComplex, data, complete)
}

// NewRaw wraps data as a raw vector. Raw vectors are always complete.
func NewRaw(data []byte) *Vector {
	return newVector(scalar.KindRaw, data, Complete)
}

// NewCharacter wraps data as a character vector.
func NewCharacter(data []string, complete bool) *Vector {
	return newVector(scalar.KindCharacter, data, complete)
}

// NewList wraps elements as a list. Every element is shared, since the list
// becomes one of its owners.
func NewList(elements []any) *Vector {
	for _, e := range elements {
		sharing.Share(e)
	}
	return newVector(scalar.KindList, elements, Incomplete)
}

func newVector(kind scalar.Kind, data any, complete bool) *Vector {
	if data == nil || isNilSlice(data) {
		data = makeData(kind, 0)
	}
	v := &Vector{
		kind:   kind,
		length: lengthOf(data),
		data:   data,
	}
	switch {
	case kind == scalar.KindRaw || v.length == 0:
		v.complete = completeYes
	case complete:
		v.complete = completeYes
		if assert.Enabled {
			assert.That(v.countNA() == 0, "%s vector claimed complete but holds NA", kind)
		}
	default:
		v.complete = completeUnknown
	}
	return v
}

// Kind returns the element kind. NULL reports KindInvalid.
func (v *Vector) Kind() scalar.Kind {
	if v == nil {
		return scalar.KindInvalid
	}
	return v.kind
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.length
}

// IsComplete reports whether no element is NA. An unknown state is resolved
// by a scan and cached.
func (v *Vector) IsComplete() bool {
	if v == nil {
		return true
	}
	if v.complete == completeUnknown {
		if v.countNA() == 0 {
			v.complete = completeYes
		} else {
			v.complete = completeNo
		}
	}
	return v.complete == completeYes
}

// KnownComplete returns the cached completeness without scanning. known is
// false when a scan would be needed. It never modifies v, so it is safe for
// concurrent readers.
func (v *Vector) KnownComplete() (complete, known bool) {
	if v == nil {
		return true, true
	}
	return v.complete == completeYes, v.complete != completeUnknown
}

// InvalidateCompleteness forgets the cached completeness. Callers that wrote
// through the slice returned by Data must call it afterwards.
func (v *Vector) InvalidateCompleteness() {
	if v != nil && v.kind != scalar.KindRaw {
		v.complete = completeUnknown
	}
}

// NACount returns the number of NA elements.
func (v *Vector) NACount() int {
	if v == nil || v.complete == completeYes {
		return 0
	}
	return v.countNA()
}

// NAPositions returns the indices of NA elements. Indices must fit uint32.
func (v *Vector) NAPositions() *roaring.Bitmap {
	bm := roaring.New()
	if v == nil || v.complete == completeYes {
		return bm
	}
	eachNA(v.data, func(i int) bool {
		bm.Add(uint32(i))
		return true
	})
	return bm
}

// IsScalarNA reports whether v is a length-1 atomic vector holding NA. Lists
// use it to decide whether an element stands for NA.
func (v *Vector) IsScalarNA() bool {
	if v == nil || v.length != 1 || !v.kind.IsAtomic() {
		return false
	}
	return v.elementIsNA(0)
}

func (v *Vector) countNA() int {
	n := 0
	eachNA(v.data, func(int) bool {
		n++
		return true
	})
	return n
}

// IncRefCount implements sharing.Shareable.
func (v *Vector) IncRefCount() {
	if v != nil {
		v.share.IncRefCount()
	}
}

// DecRefCount implements sharing.Shareable.
func (v *Vector) DecRefCount() {
	if v != nil {
		v.share.DecRefCount()
	}
}

// MakeSharedPermanent implements sharing.Shareable.
func (v *Vector) MakeSharedPermanent() {
	if v != nil {
		v.share.MakeSharedPermanent()
	}
}

// IsTemporary implements sharing.Shareable.
func (v *Vector) IsTemporary() bool {
	return v == nil || v.share.IsTemporary()
}

// IsSharedPermanent implements sharing.Shareable.
func (v *Vector) IsSharedPermanent() bool {
	return v != nil && v.share.IsSharedPermanent()
}

// ShareState implements sharing.Shareable.
func (v *Vector) ShareState() sharing.State {
	if v == nil {
		return sharing.State{Kind: sharing.Temporary}
	}
	return v.share.ShareState()
}

// Writable returns v when it may be mutated in place and a Temporary copy
// otherwise. It is the copy-on-write entry point for every writer.
func Writable(v *Vector) *Vector {
	if v == nil || v.share.IsTemporary() {
		return v
	}
	return v.Copy()
}

func (v *Vector) checkWritable(op string) {
	if !v.share.IsTemporary() {
		panic(&ShareStateViolation{Op: op, State: v.share.ShareState()})
	}
}
