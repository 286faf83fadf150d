package rvec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hupe1980/rvec/blobstore"
	"github.com/hupe1980/rvec/coerce"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/serialize"
	"github.com/hupe1980/rvec/sharing"
	"github.com/hupe1980/rvec/testutil"
	"github.com/hupe1980/rvec/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	c := New().Constants()

	for k := scalar.KindRaw; k <= scalar.KindList; k++ {
		e := c.Empty(k)
		require.NotNil(t, e, k.String())
		assert.Equal(t, k, e.Kind())
		assert.Equal(t, 0, e.Len())
		assert.True(t, e.IsSharedPermanent())

		na := c.NA(k)
		if k == scalar.KindRaw || k == scalar.KindList {
			assert.Nil(t, na, k.String())
			continue
		}
		require.NotNil(t, na, k.String())
		assert.Equal(t, 1, na.Len())
		assert.True(t, na.IsScalarNA())
		assert.True(t, na.IsSharedPermanent())
	}

	assert.Nil(t, c.Empty(scalar.KindInvalid))
	assert.Nil(t, c.NA(scalar.KindInvalid))
	assert.Equal(t, "logical[1] TRUE", c.True().String())
	assert.Equal(t, "logical[1] FALSE", c.False().String())
	assert.Same(t, c.True(), c.Logical(true))
	assert.Same(t, c.False(), c.Logical(false))

	// Constants never become writable in place.
	sharing.Unshare(c.True())
	assert.True(t, c.True().IsSharedPermanent())
	assert.Panics(t, func() { _ = c.True().Set(0, scalar.False) })
}

func TestSessionCast(t *testing.T) {
	var logs bytes.Buffer
	metrics := &BasicMetricsCollector{}
	s := New(WithLogger(newTextLogger(&logs, -8)), WithMetricsCollector(metrics))

	x := vector.NewCharacter([]string{"1", "NA", "x"}, vector.Incomplete)
	d, w, err := s.Cast(context.Background(), x, scalar.KindDouble)
	require.NoError(t, err)

	assert.Equal(t, "double[3] 1 NA NA", d.String())
	assert.True(t, w.Has(coerce.NAIntroduced))
	assert.Equal(t, []uint32{2}, w.Positions.ToArray())
	assert.Contains(t, logs.String(), "NAs introduced by coercion")
	assert.Contains(t, logs.String(), "cast completed")

	_, _, err = s.Cast(context.Background(), x, scalar.KindInvalid)
	var kme *vector.KindMismatchError
	assert.ErrorAs(t, err, &kme)

	stats := metrics.GetStats()
	assert.EqualValues(t, 2, stats.CastCount)
	assert.EqualValues(t, 1, stats.CastWarnings)
	assert.EqualValues(t, 1, stats.CastErrors)
}

func TestSessionCastToCommon(t *testing.T) {
	s := New()
	a := vector.NewInteger([]int32{1, 2}, vector.Complete)
	b := vector.NewDouble([]float64{0.5}, vector.Complete)

	ca, cb, w, err := s.CastToCommon(context.Background(), a, b)
	require.NoError(t, err)
	assert.False(t, w.Any())
	assert.Equal(t, scalar.KindDouble, ca.Kind())
	assert.Same(t, b, cb)
}

func TestWarningSampling(t *testing.T) {
	var logs bytes.Buffer
	s := New(WithLogger(newTextLogger(&logs, 0)), WithWarningSampling(3, 0))
	x := vector.NewCharacter([]string{"oops"}, vector.Complete)

	for range 7 {
		_, w, err := s.Cast(context.Background(), x, scalar.KindInteger)
		require.NoError(t, err)
		// The caller always sees the warning; only logging is sampled.
		require.True(t, w.Has(coerce.NAIntroduced))
	}

	// Events 0, 3 and 6 are logged.
	assert.Equal(t, 3, strings.Count(logs.String(), "NAs introduced by coercion"))
}

func TestSessionWritable(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s := New(WithMetricsCollector(metrics))

	v := vector.NewDouble([]float64{1, 2, 3}, vector.Complete)
	assert.Same(t, v, s.Writable(v))

	shared := s.Share(v)
	assert.Same(t, v, shared)
	w := s.Writable(v)
	assert.NotSame(t, v, w)
	require.NoError(t, w.Set(0, 10.0))

	x, err := vector.At[float64](v, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x, "copy-on-write must not touch the shared original")

	s.Unshare(v)
	assert.Same(t, v, s.Writable(v))
	assert.Nil(t, s.Writable(nil))
	s.Unshare(nil)

	stats := metrics.GetStats()
	assert.EqualValues(t, 2, stats.InPlaceWrites)
	assert.EqualValues(t, 1, stats.CopyCount)
	assert.EqualValues(t, 3, stats.CopiedElements)
}

func TestSaveLoad(t *testing.T) {
	for _, c := range []serialize.Compression{serialize.CompressionNone, serialize.CompressionLZ4, serialize.CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			ctx := context.Background()
			metrics := &BasicMetricsCollector{}
			s := New(WithCompression(c), WithMetricsCollector(metrics))
			store := blobstore.NewLocalStore(t.TempDir())

			v := testutil.NewRNG(42).Vector(scalar.KindDouble, 100, 0.1)
			require.NoError(t, v.SetDimensions([]int{10, 10}))
			require.NoError(t, s.Save(ctx, store, "ws/m.rvec", v))

			got, err := s.Load(ctx, store, "ws/m.rvec")
			require.NoError(t, err)
			assert.True(t, vector.Identical(v, got))
			assert.True(t, got.IsTemporary())

			hdr, err := store.Get(ctx, "ws/m.rvec")
			require.NoError(t, err)
			h, err := serialize.ReadHeader(hdr)
			require.NoError(t, err)
			assert.Equal(t, c, h.Compression)

			stats := metrics.GetStats()
			assert.EqualValues(t, 1, stats.SaveCount)
			assert.EqualValues(t, 1, stats.LoadCount)
			assert.Positive(t, stats.SaveBytes)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	s := New()
	store := blobstore.NewMemoryStore()

	_, err := s.Load(ctx, store, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	var ne *NameError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "load", ne.Op)
	assert.Equal(t, "missing", ne.Name)

	require.NoError(t, store.Put(ctx, "junk", []byte("not a vector")))
	_, err = s.Load(ctx, store, "junk")
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.False(t, errors.Is(err, ErrNotFound))

	err = s.Save(ctx, store, "../bad", vector.NewRaw(nil))
	assert.ErrorIs(t, err, blobstore.ErrInvalidName)
}

func TestSaveAllLoadAll(t *testing.T) {
	ctx := context.Background()
	s := New(WithConcurrency(3))
	store := blobstore.NewMemoryStore()

	rng := testutil.NewRNG(7)
	vs := make(map[string]*vector.Vector)
	var names []string
	kinds := []scalar.Kind{scalar.KindLogical, scalar.KindInteger, scalar.KindDouble, scalar.KindComplex, scalar.KindCharacter, scalar.KindRaw, scalar.KindList}
	for i, k := range kinds {
		name := fmt.Sprintf("v%d", i)
		vs[name] = rng.Vector(k, 20, 0.2)
		names = append(names, name)
	}
	require.NoError(t, s.SaveAll(ctx, store, vs))

	listed, err := s.List(ctx, store, "v")
	require.NoError(t, err)
	assert.ElementsMatch(t, names, listed)

	loaded, err := s.LoadAll(ctx, store, names)
	require.NoError(t, err)
	require.Len(t, loaded, len(vs))
	for name, v := range vs {
		assert.True(t, vector.Identical(v, loaded[name]), name)
	}

	_, err = s.LoadAll(ctx, store, append(names, "missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}
