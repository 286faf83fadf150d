package coerce

import (
	"github.com/hupe1980/rvec/attr"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
)

// Cast converts v to kind to.
//
// When v already has kind to, v itself is returned. Otherwise the result is a
// new Temporary vector; elements that are NA in v are NA in the result, and
// elements that cannot be converted become NA (raw: 0) and are recorded in
// the returned Warnings. NULL casts to a zero-length vector. The only error
// is an invalid target kind.
func Cast(v *vector.Vector, to scalar.Kind, opts ...Option) (*vector.Vector, Warnings, error) {
	if !to.IsValid() {
		return nil, Warnings{}, &vector.KindMismatchError{Op: "cast", Expected: to, Actual: v.Kind()}
	}
	if v.Kind() == to {
		return v, Warnings{}, nil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if v.Len() == 0 {
		if o.EmptyAsNull {
			return nil, Warnings{}, nil
		}
		r, err := vector.Empty(to, 0)
		if err != nil {
			return nil, Warnings{}, err
		}
		if v != nil {
			copyAttributes(r, v, o)
		}
		return r, Warnings{}, nil
	}

	var w Warnings
	data := convert(v, to, &w)
	r, err := vector.Create(to, data, keepsCompleteness(v, to), nil, nil)
	if err != nil {
		return nil, Warnings{}, err
	}
	copyAttributes(r, v, o)
	return r, w, nil
}

// keepsCompleteness reports whether converting the NA-free v to kind to is
// known to produce no NA. Widening conversions map NA only to NA; narrowing
// ones may introduce NA silently and leave the result to a lazy scan.
func keepsCompleteness(v *vector.Vector, to scalar.Kind) bool {
	if to == scalar.KindRaw || to == scalar.KindList {
		return false
	}
	if v.Kind() == scalar.KindRaw {
		return true
	}
	complete, known := v.KnownComplete()
	return known && complete && to > v.Kind() && v.Kind() != scalar.KindCharacter
}

func copyAttributes(dst, src *vector.Vector, o Options) {
	// dst is freshly created and its length equals src's, so the setters
	// below cannot fail.
	if o.KeepDimensions && src.HasDimensions() {
		_ = dst.SetDimensions(src.Dimensions())
		if dn := src.DimNames(); dn != nil {
			_ = dst.SetDimNames(dn)
		}
	}
	if o.KeepNames && src.Names() != nil {
		_ = dst.SetNames(src.Names())
	}
	if o.KeepAttributes {
		for _, name := range src.AttrNames() {
			if attr.IsReserved(name) {
				continue
			}
			val, _ := src.Attr(name)
			_ = dst.SetAttr(name, val)
		}
	}
}
