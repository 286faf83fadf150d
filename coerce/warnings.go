package coerce

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// WarningFlag identifies one kind of coercion warning.
type WarningFlag uint8

const (
	// NAIntroduced is set when text could not be parsed as the target kind.
	NAIntroduced WarningFlag = 1 << iota
	// IntegerRange is set when a finite value did not fit an integer.
	IntegerRange
	// RawOutOfRange is set when a value outside 0..255 or an NA became raw 0.
	RawOutOfRange
	// ImaginaryDiscarded is set when a non-zero imaginary part was dropped.
	ImaginaryDiscarded
)

var warningMessages = []struct {
	flag WarningFlag
	msg  string
}{
	{NAIntroduced, "NAs introduced by coercion"},
	{IntegerRange, "NAs introduced by coercion to integer range"},
	{RawOutOfRange, "out-of-range values treated as 0 in coercion to raw"},
	{ImaginaryDiscarded, "imaginary parts discarded in coercion"},
}

// Warnings collects the warnings raised by a cast. The zero value holds no
// warnings.
type Warnings struct {
	// Flags is the union of the raised warnings.
	Flags WarningFlag
	// Positions holds the indices of the elements that raised a warning. It
	// is nil when Flags is zero.
	Positions *roaring.Bitmap
}

// Any reports whether any warning was raised.
func (w Warnings) Any() bool {
	return w.Flags != 0
}

// Has reports whether flag was raised.
func (w Warnings) Has(flag WarningFlag) bool {
	return w.Flags&flag != 0
}

// Count returns the number of elements that raised a warning.
func (w Warnings) Count() int {
	if w.Positions == nil {
		return 0
	}
	return int(w.Positions.GetCardinality())
}

// Messages returns one host-language message per raised flag.
func (w Warnings) Messages() []string {
	var out []string
	for _, m := range warningMessages {
		if w.Has(m.flag) {
			out = append(out, m.msg)
		}
	}
	return out
}

// Merge adds the warnings of o.
func (w *Warnings) Merge(o Warnings) {
	if !o.Any() {
		return
	}
	w.Flags |= o.Flags
	if w.Positions == nil {
		w.Positions = roaring.New()
	}
	if o.Positions != nil {
		w.Positions.Or(o.Positions)
	}
}

func (w *Warnings) add(flag WarningFlag, i int) {
	w.Flags |= flag
	if w.Positions == nil {
		w.Positions = roaring.New()
	}
	w.Positions.Add(uint32(i))
}
