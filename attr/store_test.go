package attr

import (
	"errors"
	"testing"

	"github.com/hupe1980/rvec/sharing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shareable struct {
	sharing.Counter
}

func TestStore(t *testing.T) {
	t.Run("ordered set get remove", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Set("b", 1))
		require.NoError(t, s.Set("a", 2))
		require.NoError(t, s.Set("b", 3))

		assert.Equal(t, []string{"b", "a"}, s.Names())
		v, ok := s.Get("b")
		assert.True(t, ok)
		assert.Equal(t, 3, v)

		assert.True(t, s.Remove("b"))
		assert.False(t, s.Remove("b"))
		assert.Equal(t, []string{"a"}, s.Names())
		assert.Equal(t, 1, s.Len())
	})

	t.Run("nil value removes", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Set(Class, "factor"))
		require.NoError(t, s.Set(Class, nil))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("reserved names rejected", func(t *testing.T) {
		s := New()
		for _, name := range []string{Dim, Names, DimNames} {
			err := s.Set(name, 1)
			assert.True(t, errors.Is(err, ErrReservedName), name)
		}
		assert.NoError(t, s.Set(Class, "matrix"))
	})

	t.Run("nil store reads", func(t *testing.T) {
		var s *Store
		assert.Equal(t, 0, s.Len())
		_, ok := s.Get("x")
		assert.False(t, ok)
		assert.Nil(t, s.Names())
		for range s.All() {
			t.Fatal("unexpected attribute")
		}
	})

	t.Run("values gain and lose owners", func(t *testing.T) {
		v := &shareable{}
		s := New()
		require.NoError(t, s.Set("meta", v))
		assert.False(t, sharing.MayMutateInPlace(v))

		c := s.Clone()
		assert.Equal(t, 2, v.ShareState().Refs)

		c.Clear()
		assert.True(t, s.Remove("meta"))
		assert.True(t, v.IsTemporary())
	})

	t.Run("copy from keeps existing", func(t *testing.T) {
		dst := New()
		require.NoError(t, dst.Set("x", 1))
		src := New()
		require.NoError(t, src.Set("y", 2))
		require.NoError(t, src.Set("x", 3))

		dst.CopyFrom(src)
		assert.Equal(t, []string{"x", "y"}, dst.Names())
		v, _ := dst.Get("x")
		assert.Equal(t, 3, v)
	})
}
