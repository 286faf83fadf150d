package vector_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/hupe1980/rvec/internal/assert"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/sharing"
	"github.com/hupe1980/rvec/testutil"
	"github.com/hupe1980/rvec/vector"
	"github.com/stretchr/testify/require"

	testify "github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	t.Run("with dims", func(t *testing.T) {
		v, err := vector.Create(scalar.KindInteger, []int32{1, 2, 3, 4, 5, 6}, vector.Complete, []int{2, 3}, nil)
		require.NoError(t, err)
		testify.Equal(t, scalar.KindInteger, v.Kind())
		testify.Equal(t, 6, v.Len())
		testify.Equal(t, []int{2, 3}, v.Dimensions())
		testify.True(t, v.IsTemporary())
	})

	t.Run("dims do not match length", func(t *testing.T) {
		_, err := vector.Create(scalar.KindInteger, []int32{1, 2, 3, 4, 5, 6}, vector.Complete, []int{4, 2}, nil)
		var dm *vector.DimensionMismatchError
		require.ErrorAs(t, err, &dm)
		testify.Equal(t, "dim", dm.Attr)
		testify.Equal(t, 6, dm.Length)
	})

	t.Run("negative dim", func(t *testing.T) {
		_, err := vector.Create(scalar.KindDouble, []float64{}, vector.Complete, []int{-1, 0}, nil)
		var dm *vector.DimensionMismatchError
		testify.ErrorAs(t, err, &dm)
	})

	t.Run("zero extent", func(t *testing.T) {
		v, err := vector.Create(scalar.KindDouble, []float64{}, vector.Complete, []int{0, 3}, nil)
		require.NoError(t, err)
		testify.Equal(t, []int{0, 3}, v.Dimensions())
	})

	t.Run("names", func(t *testing.T) {
		names := vector.NewCharacter([]string{"a", "b"}, vector.Complete)
		v, err := vector.Create(scalar.KindDouble, []float64{1, 2}, vector.Complete, nil, names)
		require.NoError(t, err)
		testify.Same(t, names, v.Names())
		testify.False(t, names.IsTemporary())
	})

	t.Run("names of wrong length", func(t *testing.T) {
		names := vector.NewCharacter([]string{"a"}, vector.Complete)
		_, err := vector.Create(scalar.KindDouble, []float64{1, 2}, vector.Complete, nil, names)
		var dm *vector.DimensionMismatchError
		require.ErrorAs(t, err, &dm)
		testify.Equal(t, "names", dm.Attr)
	})

	t.Run("data of another kind", func(t *testing.T) {
		_, err := vector.Create(scalar.KindDouble, []int32{1}, vector.Complete, nil, nil)
		var km *vector.KindMismatchError
		require.ErrorAs(t, err, &km)
		testify.Equal(t, scalar.KindDouble, km.Expected)
		testify.Equal(t, scalar.KindInteger, km.Actual)
	})

	t.Run("nil data", func(t *testing.T) {
		v, err := vector.Create(scalar.KindCharacter, nil, vector.Incomplete, nil, nil)
		require.Error(t, err)
		testify.Nil(t, v)
	})
}

func TestEmptyAndNA(t *testing.T) {
	for k := scalar.KindRaw; k <= scalar.KindList; k++ {
		e, err := vector.Empty(k, 3)
		require.NoError(t, err)
		testify.Equal(t, 3, e.Len())
		testify.True(t, e.IsComplete(), k.String())
		x, _ := e.Get(0)
		testify.Equal(t, k.Ops().Default(), x, k.String())

		n, err := vector.NA(k, 3)
		require.NoError(t, err)
		if k == scalar.KindRaw || k == scalar.KindList {
			testify.True(t, n.IsComplete(), k.String())
			continue
		}
		testify.False(t, n.IsComplete(), k.String())
		testify.Equal(t, 3, n.NACount(), k.String())
	}

	_, err := vector.Empty(scalar.KindDouble, -1)
	testify.ErrorIs(t, err, vector.ErrInvalidLength)
	_, err = vector.NA(scalar.KindInvalid, 1)
	testify.Error(t, err)
}

func TestCompleteness(t *testing.T) {
	t.Run("agrees with a scan", func(t *testing.T) {
		rng := testutil.NewRNG(4711)
		for k := scalar.KindRaw; k <= scalar.KindList; k++ {
			for _, rate := range []float64{0, 0.01, 0.5} {
				v := rng.Vector(k, 200, rate)
				na := 0
				for _, e := range v.Elements() {
					if k != scalar.KindRaw && k.Ops().IsNA(e) {
						na++
					}
				}
				testify.Equal(t, na == 0, v.IsComplete(), "%s rate %v", k, rate)
				testify.Equal(t, na, v.NACount(), "%s rate %v", k, rate)
				testify.Equal(t, uint64(na), v.NAPositions().GetCardinality())
			}
		}
	})

	t.Run("incomplete claim is resolved lazily", func(t *testing.T) {
		v := vector.NewDouble([]float64{1, 2}, vector.Incomplete)
		_, known := v.KnownComplete()
		testify.False(t, known)
		testify.True(t, v.IsComplete())
		complete, known := v.KnownComplete()
		testify.True(t, known)
		testify.True(t, complete)
	})

	t.Run("NaN is not NA", func(t *testing.T) {
		v := vector.NewDouble([]float64{math.NaN(), 1}, vector.Incomplete)
		testify.True(t, v.IsComplete())
	})

	t.Run("writes keep the cache current", func(t *testing.T) {
		v := vector.NewInteger([]int32{1, 2, 3}, vector.Complete)
		require.NoError(t, v.Set(1, scalar.NAInteger))
		complete, known := v.KnownComplete()
		testify.True(t, known)
		testify.False(t, complete)

		require.NoError(t, v.Set(1, int32(5)))
		_, known = v.KnownComplete()
		testify.False(t, known)
		testify.True(t, v.IsComplete())
	})

	t.Run("false complete claim", func(t *testing.T) {
		if !assert.Enabled {
			t.Skip("requires the rvecdebug build tag")
		}
		testify.Panics(t, func() {
			vector.NewCharacter([]string{scalar.NAString}, vector.Complete)
		})
	})

	t.Run("list NA elements", func(t *testing.T) {
		na, _ := vector.NA(scalar.KindLogical, 1)
		l := vector.NewList([]any{na, vector.NewDouble([]float64{1, 2}, vector.Complete), nil})
		testify.Equal(t, 1, l.NACount())
		testify.True(t, na.IsScalarNA())
	})
}

func TestSharing(t *testing.T) {
	t.Run("writes through Writable are isolated", func(t *testing.T) {
		v := vector.NewDouble([]float64{1, 2, 3}, vector.Complete)
		sharing.Share(v)

		w := vector.Writable(v)
		testify.NotSame(t, v, w)
		require.NoError(t, w.Set(0, 42.0))

		x, _ := vector.At[float64](v, 0)
		testify.Equal(t, 1.0, x)
		y, _ := vector.At[float64](w, 0)
		testify.Equal(t, 42.0, y)
	})

	t.Run("Writable of a temporary vector is the vector", func(t *testing.T) {
		v := vector.NewDouble([]float64{1}, vector.Complete)
		testify.Same(t, v, vector.Writable(v))
		testify.Nil(t, vector.Writable(nil))
	})

	t.Run("set on shared vector panics", func(t *testing.T) {
		v := sharing.Share(vector.NewInteger([]int32{1}, vector.Complete))
		testify.PanicsWithError(t, "set: in-place write on shared(1) vector", func() {
			_ = v.Set(0, int32(2))
		})
	})

	t.Run("permanent vectors stay shared", func(t *testing.T) {
		v := sharing.SharePermanent(vector.NewLogical([]scalar.Logical{scalar.True}, vector.Complete))
		sharing.Unshare(v)
		testify.True(t, v.IsSharedPermanent())
		testify.Panics(t, func() { _ = v.SetNames(nil) })
	})

	t.Run("lists own their elements", func(t *testing.T) {
		e := vector.NewDouble([]float64{1}, vector.Complete)
		l := vector.NewList([]any{e})
		testify.Equal(t, sharing.State{Kind: sharing.Shared, Refs: 1}, e.ShareState())

		c := l.Copy()
		testify.Equal(t, 2, e.ShareState().Refs)

		require.NoError(t, c.Set(0, nil))
		testify.Equal(t, 1, e.ShareState().Refs)
	})

	t.Run("nil vector", func(t *testing.T) {
		var v *vector.Vector
		testify.NotPanics(t, func() {
			v.IncRefCount()
			v.DecRefCount()
			v.MakeSharedPermanent()
		})
		testify.True(t, v.IsTemporary())
		testify.Equal(t, scalar.KindInvalid, v.Kind())
		testify.Equal(t, 0, v.Len())
		testify.Equal(t, "NULL", v.String())
	})
}

// scanComplete decides completeness element by element, bypassing the cache.
func scanComplete(v *vector.Vector) bool {
	ops := v.Kind().Ops()
	for _, e := range v.Elements() {
		if ops.IsNA(e) {
			return false
		}
	}
	return true
}

func completenessAgrees(t *testing.T, v *vector.Vector, msgAndArgs ...any) {
	t.Helper()
	want := scanComplete(v)
	if complete, known := v.KnownComplete(); known {
		testify.Equal(t, want, complete, msgAndArgs...)
	}
	testify.Equal(t, want, v.IsComplete(), msgAndArgs...)
	testify.Equal(t, want, v.NACount() == 0, msgAndArgs...)
}

func naValue(k scalar.Kind) any {
	if k == scalar.KindList {
		return vector.NewDouble([]float64{scalar.NADouble}, vector.Incomplete)
	}
	return k.Ops().NA()
}

func TestCompletenessAfterOperations(t *testing.T) {
	rng := testutil.NewRNG(2024)
	for k := scalar.KindRaw; k <= scalar.KindList; k++ {
		for _, rate := range []float64{0, 0.05, 0.5, 1} {
			for _, resolved := range []bool{false, true} {
				t.Run(fmt.Sprintf("%s/rate=%v/resolved=%v", k, rate, resolved), func(t *testing.T) {
					src := rng.Vector(k, 40, rate)
					if resolved {
						src.IsComplete()
					}

					completenessAgrees(t, src.Copy(), "copy")

					for _, n := range []int{0, 1, 20, 40, 47, 100} {
						for _, fill := range []bool{false, true} {
							r, err := src.Resize(n, fill)
							require.NoError(t, err)
							completenessAgrees(t, r, "resize %d fill=%v", n, fill)
						}
					}

					w := src.Copy()
					other := rng.Vector(k, 40, 0.5)
					for i := range 40 {
						switch i % 3 {
						case 0:
							require.NoError(t, w.Set(i, naValue(k)))
						case 1:
							require.NoError(t, w.Set(i, k.Ops().Default()))
						default:
							require.NoError(t, w.TransferElement(i, other, i))
						}
						completenessAgrees(t, w, "write %d", i)
					}

					m, err := src.WithNewDimensions([]int{4, 10})
					require.NoError(t, err)
					completenessAgrees(t, m, "with new dimensions")
					completenessAgrees(t, src, "source")
				})
			}
		}
	}
}
