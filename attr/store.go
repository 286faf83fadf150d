package attr

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/rvec/sharing"
)

// Well-known attribute names. Dim, Names and DimNames are reserved.
const (
	Dim      = "dim"
	Names    = "names"
	DimNames = "dimnames"
	Class    = "class"
)

// ErrReservedName is returned when a reserved name is stored in a Store.
var ErrReservedName = errors.New("attribute is held by the vector")

// IsReserved reports whether name is one of the fast-path attributes.
func IsReserved(name string) bool {
	return name == Dim || name == Names || name == DimNames
}

// Store is an ordered name to value mapping. The zero value is empty and
// ready to use; a nil *Store is a valid empty store for reads.
type Store struct {
	keys   []string
	values map[string]any
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of attributes.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Get returns the value stored under name.
func (s *Store) Get(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name. A nil value removes the attribute.
func (s *Store) Set(name string, value any) error {
	if IsReserved(name) {
		return fmt.Errorf("set %q: %w", name, ErrReservedName)
	}
	if value == nil {
		s.Remove(name)
		return nil
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	old, exists := s.values[name]
	s.values[name] = sharing.Share(value)
	if exists {
		sharing.Unshare(old)
	} else {
		s.keys = append(s.keys, name)
	}
	return nil
}

// Remove deletes name and reports whether it was present.
func (s *Store) Remove(name string) bool {
	if s == nil {
		return false
	}
	old, ok := s.values[name]
	if !ok {
		return false
	}
	delete(s.values, name)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == name })
	sharing.Unshare(old)
	return true
}

// Names returns the attribute names in insertion order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// All iterates the attributes in insertion order.
func (s *Store) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy. The values gain the clone as an owner.
func (s *Store) Clone() *Store {
	c := New()
	c.CopyFrom(s)
	return c
}

// CopyFrom copies every attribute of src into s, replacing attributes with
// the same name.
func (s *Store) CopyFrom(src *Store) {
	for k, v := range src.All() {
		// Reserved names never enter a Store, so Set cannot fail here.
		_ = s.Set(k, v)
	}
}

// Clear removes every attribute.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	for _, k := range s.keys {
		sharing.Unshare(s.values[k])
	}
	s.keys = nil
	s.values = nil
}
