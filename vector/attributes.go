package vector

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/rvec/attr"
	"github.com/hupe1980/rvec/scalar"
)

func validateDims(dims []int, length int) error {
	for _, d := range dims {
		if d < 0 {
			return &DimensionMismatchError{Attr: attr.Dim, Dims: slices.Clone(dims), Length: length}
		}
	}
	if product(dims) != length {
		return &DimensionMismatchError{Attr: attr.Dim, Dims: slices.Clone(dims), Length: length}
	}
	return nil
}

// Dimensions returns a copy of the dim attribute, or nil.
func (v *Vector) Dimensions() []int {
	if v == nil {
		return nil
	}
	return slices.Clone(v.dims)
}

// HasDimensions reports whether the dim attribute is set.
func (v *Vector) HasDimensions() bool {
	return v != nil && v.dims != nil
}

// SetDimensions sets the dim attribute; nil removes it. Setting dim drops
// names and dimnames.
func (v *Vector) SetDimensions(dims []int) error {
	v.checkWritable("set dim")
	if dims != nil {
		if err := validateDims(dims, v.length); err != nil {
			return err
		}
	}
	v.dims = slices.Clone(dims)
	v.replaceNames(nil)
	v.replaceDimNames(nil)
	return nil
}

// Names returns the names attribute, or nil.
func (v *Vector) Names() *Vector {
	if v == nil {
		return nil
	}
	return v.names
}

// SetNames sets the names attribute; nil removes it. names must be a
// character vector of the same length as v. The names vector is shared.
func (v *Vector) SetNames(names *Vector) error {
	v.checkWritable("set names")
	if names != nil {
		if names.kind != scalar.KindCharacter {
			return &KindMismatchError{Op: "set names", Expected: scalar.KindCharacter, Actual: names.kind}
		}
		if names.length != v.length {
			return &DimensionMismatchError{Attr: attr.Names, Dims: []int{names.length}, Length: v.length}
		}
	}
	v.replaceNames(names)
	return nil
}

// DimNames returns the dimnames attribute, or nil.
func (v *Vector) DimNames() *Vector {
	if v == nil {
		return nil
	}
	return v.dimNames
}

// SetDimNames sets the dimnames attribute; nil removes it. dimnames must be a
// list with one element per dimension, each NULL or a character vector whose
// length equals that extent.
func (v *Vector) SetDimNames(dimNames *Vector) error {
	v.checkWritable("set dimnames")
	if dimNames == nil {
		v.replaceDimNames(nil)
		return nil
	}
	if v.dims == nil {
		return fmt.Errorf("set dimnames: %w", ErrNoDimensions)
	}
	if dimNames.kind != scalar.KindList {
		return &KindMismatchError{Op: "set dimnames", Expected: scalar.KindList, Actual: dimNames.kind}
	}
	if dimNames.length != len(v.dims) {
		return &DimensionMismatchError{Attr: attr.DimNames, Dims: []int{dimNames.length}, Length: len(v.dims)}
	}
	for i, e := range dimNames.data.([]any) {
		if e == nil {
			continue
		}
		ev, ok := e.(*Vector)
		if !ok || ev.kind != scalar.KindCharacter {
			return &KindMismatchError{Op: "set dimnames", Expected: scalar.KindCharacter, Actual: kindOfElement(e)}
		}
		if ev.length != v.dims[i] {
			return &DimensionMismatchError{Attr: attr.DimNames, Dims: []int{ev.length}, Length: v.dims[i]}
		}
	}
	v.replaceDimNames(dimNames)
	return nil
}

func (v *Vector) replaceNames(names *Vector) {
	old := v.names
	v.names = shareVector(names)
	old.DecRefCount()
}

func (v *Vector) replaceDimNames(dimNames *Vector) {
	old := v.dimNames
	v.dimNames = shareVector(dimNames)
	old.DecRefCount()
}

func kindOfElement(e any) scalar.Kind {
	if ev, ok := e.(*Vector); ok {
		return ev.Kind()
	}
	return scalar.KindInvalid
}

// Attr returns the attribute name. dim is returned as an integer vector.
func (v *Vector) Attr(name string) (any, bool) {
	if v == nil {
		return nil, false
	}
	switch name {
	case attr.Dim:
		if v.dims == nil {
			return nil, false
		}
		d := make([]int32, len(v.dims))
		for i, x := range v.dims {
			d[i] = int32(x)
		}
		return NewInteger(d, Complete), true
	case attr.Names:
		return v.names, v.names != nil
	case attr.DimNames:
		return v.dimNames, v.dimNames != nil
	default:
		return v.attrs.Get(name)
	}
}

// SetAttr sets the attribute name; a nil value removes it. dim accepts an
// integer or double vector without NA, names a character vector and dimnames
// a list, with the same rules as the dedicated setters.
func (v *Vector) SetAttr(name string, value any) error {
	v.checkWritable("set attribute")
	if !attr.IsReserved(name) {
		if v.attrs == nil {
			if value == nil {
				return nil
			}
			v.attrs = attr.New()
		}
		return v.attrs.Set(name, value)
	}

	var vec *Vector
	if value != nil {
		var ok bool
		if vec, ok = value.(*Vector); !ok {
			return &KindMismatchError{Op: "set " + name, Expected: scalar.KindInteger, Actual: kindOfValue(value)}
		}
	}
	switch name {
	case attr.Dim:
		if vec == nil {
			return v.SetDimensions(nil)
		}
		dims, err := dimsFromVector(vec)
		if err != nil {
			return err
		}
		return v.SetDimensions(dims)
	case attr.Names:
		return v.SetNames(vec)
	default:
		return v.SetDimNames(vec)
	}
}

func dimsFromVector(vec *Vector) ([]int, error) {
	dims := make([]int, vec.Len())
	switch d := vec.data.(type) {
	case []int32:
		for i, x := range d {
			if scalar.IsNAInteger(x) {
				return nil, &DimensionMismatchError{Attr: attr.Dim, Dims: nil, Length: vec.Len()}
			}
			dims[i] = int(x)
		}
	case []float64:
		for i, x := range d {
			if math.IsNaN(x) || x != math.Trunc(x) || x < 0 || x > math.MaxInt32 {
				return nil, &DimensionMismatchError{Attr: attr.Dim, Dims: nil, Length: vec.Len()}
			}
			dims[i] = int(x)
		}
	default:
		return nil, &KindMismatchError{Op: "set dim", Expected: scalar.KindInteger, Actual: vec.Kind()}
	}
	return dims, nil
}

// RemoveAttr removes the attribute name.
func (v *Vector) RemoveAttr(name string) error {
	return v.SetAttr(name, nil)
}

// AttrNames lists the attributes that are set: names, dim and dimnames
// first, then the generic attributes in insertion order.
func (v *Vector) AttrNames() []string {
	if v == nil {
		return nil
	}
	var out []string
	if v.names != nil {
		out = append(out, attr.Names)
	}
	if v.dims != nil {
		out = append(out, attr.Dim)
	}
	if v.dimNames != nil {
		out = append(out, attr.DimNames)
	}
	return append(out, v.attrs.Names()...)
}

// CopyAttributesFrom copies attributes of src onto v, which must be
// Temporary. Generic attributes are always copied. dim, dimnames and names
// are copied only when includeDimAndNames is set and they fit v's length.
func (v *Vector) CopyAttributesFrom(src *Vector, includeDimAndNames bool) {
	v.checkWritable("copy attributes")
	if src == nil {
		return
	}
	if src.attrs.Len() > 0 {
		if v.attrs == nil {
			v.attrs = attr.New()
		}
		v.attrs.CopyFrom(src.attrs)
	}
	if !includeDimAndNames {
		return
	}
	if src.dims != nil && product(src.dims) == v.length {
		v.dims = slices.Clone(src.dims)
		v.replaceDimNames(src.dimNames)
	}
	if src.names != nil && src.names.length == v.length {
		v.replaceNames(src.names)
	}
}

// ClearAttributes removes every attribute, including dim and names.
func (v *Vector) ClearAttributes() {
	v.checkWritable("clear attributes")
	v.dims = nil
	v.replaceNames(nil)
	v.replaceDimNames(nil)
	v.attrs.Clear()
	v.attrs = nil
}
