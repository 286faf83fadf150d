package sharing

import (
	"fmt"
	"math"

	"github.com/hupe1980/rvec/internal/assert"
)

// StateKind is the coarse share state.
type StateKind uint8

const (
	// Temporary marks a value with a single owner.
	Temporary StateKind = iota
	// Shared marks a value with additional recorded owners.
	Shared
	// SharedPermanent marks a value that must never be mutated.
	SharedPermanent
)

// String returns the state name.
func (k StateKind) String() string {
	switch k {
	case Temporary:
		return "temporary"
	case Shared:
		return "shared"
	case SharedPermanent:
		return "shared-permanent"
	default:
		return "invalid"
	}
}

// State is a snapshot of a share state. Refs is only meaningful for Shared.
type State struct {
	Kind StateKind
	Refs int
}

// String formats the state, e.g. "shared(2)".
func (s State) String() string {
	if s.Kind == Shared {
		return fmt.Sprintf("shared(%d)", s.Refs)
	}
	return s.Kind.String()
}

// permanentRefs marks SharedPermanent inside Counter.
const permanentRefs = math.MinInt32

// Counter holds a share state. The zero value is Temporary. Embed it to make
// a type Shareable.
type Counter struct {
	refs int32
}

// IncRefCount records an additional owner. No-op when SharedPermanent.
// The count saturates at math.MaxInt32 and never reaches SharedPermanent.
func (c *Counter) IncRefCount() {
	if c.refs != permanentRefs && c.refs < math.MaxInt32 {
		c.refs++
	}
}

// DecRefCount removes a recorded owner. No-op when SharedPermanent.
// Dropping below Temporary is a caller bug: debug builds panic, release
// builds stay at Temporary.
func (c *Counter) DecRefCount() {
	if c.refs == permanentRefs {
		return
	}
	assert.That(c.refs > 0, "share count dropped below zero")
	if c.refs > 0 {
		c.refs--
	}
}

// MakeSharedPermanent moves to SharedPermanent. The transition is irreversible.
func (c *Counter) MakeSharedPermanent() {
	c.refs = permanentRefs
}

// IsTemporary reports whether the owner may mutate in place.
func (c *Counter) IsTemporary() bool {
	return c.refs == 0
}

// IsShared reports whether the value is Shared or SharedPermanent.
func (c *Counter) IsShared() bool {
	return c.refs != 0
}

// IsSharedPermanent reports whether the value is SharedPermanent.
func (c *Counter) IsSharedPermanent() bool {
	return c.refs == permanentRefs
}

// ShareState returns a snapshot of the state.
func (c *Counter) ShareState() State {
	switch {
	case c.refs == permanentRefs:
		return State{Kind: SharedPermanent}
	case c.refs == 0:
		return State{Kind: Temporary}
	default:
		return State{Kind: Shared, Refs: int(c.refs)}
	}
}

// Shareable is implemented by values that take part in copy-on-write.
type Shareable interface {
	IncRefCount()
	DecRefCount()
	MakeSharedPermanent()
	IsTemporary() bool
	IsSharedPermanent() bool
	ShareState() State
}

var _ Shareable = (*Counter)(nil)

// Share records that a second owner retains v, e.g. when v is assigned to a
// variable or stored into a list. It returns v for chaining.
func Share[T any](v T) T {
	if s, ok := any(v).(Shareable); ok {
		s.IncRefCount()
	}
	return v
}

// SharePermanent makes v SharedPermanent and returns it.
func SharePermanent[T any](v T) T {
	if s, ok := any(v).(Shareable); ok {
		s.MakeSharedPermanent()
	}
	return v
}

// Unshare removes an owner recorded by Share.
func Unshare(v any) {
	if s, ok := v.(Shareable); ok {
		s.DecRefCount()
	}
}

// MayMutateInPlace reports whether v may be written without copying first.
// Values that are not Shareable are plain values and report true.
func MayMutateInPlace(v any) bool {
	if s, ok := v.(Shareable); ok {
		return s.IsTemporary()
	}
	return true
}

// StateOf returns the share state of v. Values that are not Shareable
// report Temporary.
func StateOf(v any) State {
	if s, ok := v.(Shareable); ok {
		return s.ShareState()
	}
	return State{Kind: Temporary}
}
