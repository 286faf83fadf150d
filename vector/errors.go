package vector

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/sharing"
)

var (
	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("invalid vector length")
	// ErrNoDimensions is returned when dimnames are set on a vector without dim.
	ErrNoDimensions = errors.New("vector has no dimensions")
)

// IndexError reports an element access outside [0, Length).
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

// DimensionMismatchError reports an extent that does not fit the vector.
// Attr names the offending attribute: "dim", "names" or "dimnames".
type DimensionMismatchError struct {
	Attr   string
	Dims   []int
	Length int
}

func (e *DimensionMismatchError) Error() string {
	switch e.Attr {
	case "dim":
		return fmt.Sprintf("dims %v (product %d) do not match vector length %d", e.Dims, product(e.Dims), e.Length)
	case "names":
		return fmt.Sprintf("names of length %d do not match vector length %d", product(e.Dims), e.Length)
	default:
		return fmt.Sprintf("%s extent %v does not match %d", e.Attr, e.Dims, e.Length)
	}
}

// KindMismatchError reports a vector or value of the wrong kind where no
// implicit cast applies.
type KindMismatchError struct {
	Op       string
	Expected scalar.Kind
	Actual   scalar.Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s: kind mismatch: expected %s, got %s", e.Op, e.Expected, e.Actual)
}

// ShareStateViolation reports an in-place write on a vector that is not
// Temporary. It indicates a bug in the caller and is only ever raised as a
// panic value.
type ShareStateViolation struct {
	Op    string
	State sharing.State
}

func (e *ShareStateViolation) Error() string {
	return fmt.Sprintf("%s: in-place write on %s vector", e.Op, e.State)
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}
