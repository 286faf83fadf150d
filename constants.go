package rvec

import (
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/sharing"
	"github.com/hupe1980/rvec/vector"
)

// Constants holds the values a session hands out instead of allocating:
// zero-length vectors of every kind, length-1 NA vectors of every kind that
// has an NA, and TRUE/FALSE. All of them are SharedPermanent, so writers
// must go through Writable and get a copy.
type Constants struct {
	empty [scalar.KindList + 1]*vector.Vector
	na    [scalar.KindList + 1]*vector.Vector
	t, f  *vector.Vector
}

func newConstants() *Constants {
	c := &Constants{}
	for k := scalar.KindRaw; k <= scalar.KindList; k++ {
		e, _ := vector.Empty(k, 0)
		c.empty[k] = sharing.SharePermanent(e)
		if k.HasNA() && k.IsAtomic() {
			na, _ := vector.NA(k, 1)
			c.na[k] = sharing.SharePermanent(na)
		}
	}
	c.t = sharing.SharePermanent(vector.NewLogical([]scalar.Logical{scalar.True}, vector.Complete))
	c.f = sharing.SharePermanent(vector.NewLogical([]scalar.Logical{scalar.False}, vector.Complete))
	return c
}

// Empty returns the zero-length vector of kind, or nil for an invalid kind.
func (c *Constants) Empty(kind scalar.Kind) *vector.Vector {
	if !kind.IsValid() {
		return nil
	}
	return c.empty[kind]
}

// NA returns the length-1 NA vector of kind. Raw and List have none and
// return nil.
func (c *Constants) NA(kind scalar.Kind) *vector.Vector {
	if !kind.IsValid() {
		return nil
	}
	return c.na[kind]
}

// True returns the length-1 logical TRUE.
func (c *Constants) True() *vector.Vector { return c.t }

// False returns the length-1 logical FALSE.
func (c *Constants) False() *vector.Vector { return c.f }

// Logical returns True or False for b.
func (c *Constants) Logical(b bool) *vector.Vector {
	if b {
		return c.t
	}
	return c.f
}
