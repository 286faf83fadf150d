package sharing

import (
	"math"
	"testing"

	"github.com/hupe1980/rvec/internal/assert"
	testify "github.com/stretchr/testify/assert"
)

type box struct {
	Counter
	v int
}

func TestCounterTransitions(t *testing.T) {
	t.Run("temporary to shared and back", func(t *testing.T) {
		b := &box{}
		testify.True(t, MayMutateInPlace(b))
		testify.Equal(t, State{Kind: Temporary}, StateOf(b))

		Share(b)
		testify.False(t, MayMutateInPlace(b))
		testify.Equal(t, State{Kind: Shared, Refs: 1}, StateOf(b))

		Share(b)
		testify.Equal(t, "shared(2)", StateOf(b).String())

		Unshare(b)
		Unshare(b)
		testify.True(t, MayMutateInPlace(b))
	})

	t.Run("permanent is terminal", func(t *testing.T) {
		b := SharePermanent(&box{})
		testify.True(t, b.IsSharedPermanent())
		Share(b)
		Unshare(b)
		Unshare(b)
		testify.True(t, b.IsSharedPermanent())
		testify.False(t, MayMutateInPlace(b))
		testify.Equal(t, "shared-permanent", StateOf(b).String())
	})

	t.Run("count saturates below permanent", func(t *testing.T) {
		b := &box{}
		b.refs = math.MaxInt32 - 1
		Share(b)
		Share(b)
		testify.Equal(t, State{Kind: Shared, Refs: math.MaxInt32}, StateOf(b))
		testify.False(t, b.IsSharedPermanent())

		Unshare(b)
		testify.Equal(t, State{Kind: Shared, Refs: math.MaxInt32 - 1}, StateOf(b))
	})

	t.Run("unshare below zero", func(t *testing.T) {
		b := &box{}
		if assert.Enabled {
			testify.Panics(t, func() { Unshare(b) })
			return
		}
		Unshare(b)
		testify.True(t, b.IsTemporary())
	})
}

func TestNonShareablePassThrough(t *testing.T) {
	testify.Equal(t, 42, Share(42))
	testify.Equal(t, "x", SharePermanent("x"))
	testify.NotPanics(t, func() { Unshare(3.5) })
	testify.NotPanics(t, func() { Unshare(nil) })
	testify.True(t, MayMutateInPlace([]int{1}))
	testify.True(t, MayMutateInPlace(nil))
	testify.Equal(t, State{Kind: Temporary}, StateOf(struct{}{}))
}

func TestShareReturnsSameValue(t *testing.T) {
	b := &box{v: 7}
	got := Share(b)
	testify.Same(t, b, got)
	testify.Equal(t, 7, got.v)
}
