package testutil

import (
	"testing"

	"github.com/hupe1980/rvec/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegers(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Integers(1000, 0)

	assert.Equal(t, 1000, len(v))
	for _, x := range v {
		assert.False(t, scalar.IsNAInteger(x))
		assert.GreaterOrEqual(t, x, int32(-1000))
		assert.Less(t, x, int32(1000))
	}
}

func TestNARate(t *testing.T) {
	rng := NewRNG(4711)

	all := rng.Doubles(100, 1)
	for _, x := range all {
		assert.True(t, scalar.IsNADouble(x))
	}

	some := rng.Strings(10000, 0.25)
	na := 0
	for _, s := range some {
		if scalar.IsNAString(s) {
			na++
		}
	}
	assert.InDelta(t, 2500, na, 300)
}

func TestVector(t *testing.T) {
	rng := NewRNG(4711)

	for k := scalar.KindRaw; k <= scalar.KindList; k++ {
		v := rng.Vector(k, 16, 0.5)
		require.NotNil(t, v, k.String())
		assert.Equal(t, k, v.Kind())
		assert.Equal(t, 16, v.Len())
	}
	assert.Nil(t, rng.Vector(scalar.KindInvalid, 4, 0))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Doubles(10, 0.1)

	rng.Reset()
	v2 := rng.Doubles(10, 0.1)

	assert.Equal(t, int64(4711), rng.Seed())
	for i := range v1 {
		assert.Equal(t, scalar.IsNADouble(v1[i]), scalar.IsNADouble(v2[i]))
	}
}
