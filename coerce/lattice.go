package coerce

import (
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
)

// WidestCommonKind returns the kind both a and b can be cast to without
// loss of category: the later of the two in coercion order. List absorbs
// every kind, and Raw is promoted straight to the other kind. KindInvalid
// (NULL) is neutral.
func WidestCommonKind(a, b scalar.Kind) scalar.Kind {
	return max(a, b)
}

// CommonKind folds WidestCommonKind over the kinds of vs. NULL operands are
// skipped; KindInvalid is returned when every operand is NULL.
func CommonKind(vs ...*vector.Vector) scalar.Kind {
	k := scalar.KindInvalid
	for _, v := range vs {
		k = WidestCommonKind(k, v.Kind())
	}
	return k
}

// CastToCommon casts a and b to their widest common kind, as element-wise
// builtins do before combining operands. The returned Warnings merges both
// casts, so Positions refers to indices in either operand.
func CastToCommon(a, b *vector.Vector, opts ...Option) (ca, cb *vector.Vector, w Warnings, err error) {
	k := CommonKind(a, b)
	if k == scalar.KindInvalid {
		return a, b, Warnings{}, nil
	}
	ca, wa, err := Cast(a, k, opts...)
	if err != nil {
		return nil, nil, Warnings{}, err
	}
	cb, wb, err := Cast(b, k, opts...)
	if err != nil {
		return nil, nil, Warnings{}, err
	}
	w.Merge(wa)
	w.Merge(wb)
	return ca, cb, w, nil
}
