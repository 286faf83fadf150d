package serialize

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/rvec/attr"
	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
)

// Marshal encodes v, which may be nil (NULL).
func Marshal(v *vector.Vector, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(&buf, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the encoding of v to w and returns the number of bytes
// written.
//
// Encode only reads v and never resolves its completeness by a scan, so
// vectors may be encoded concurrently with other readers.
func Encode(w io.Writer, v *vector.Vector, opts ...Option) (int64, error) {
	o := buildOptions(opts)
	if !o.Compression.IsValid() {
		return 0, fmt.Errorf("serialize: invalid %s", o.Compression)
	}

	e := &encoder{}
	if err := e.value(v, 0); err != nil {
		return 0, err
	}

	header := append([]byte(magic), formatVersion, byte(o.Compression))
	n, err := w.Write(header)
	if err != nil {
		return int64(n), err
	}
	m, err := writeBlocks(w, e.buf, o.Compression, o.BlockSize)
	return int64(n) + m, err
}

type encoder struct {
	buf []byte
}

func (e *encoder) uvarint(x uint64) {
	e.buf = binary.AppendUvarint(e.buf, x)
}

func (e *encoder) str(s string) {
	e.uvarint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) value(v *vector.Vector, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("serialize: nesting deeper than %d", maxDepth)
	}
	if v == nil {
		e.buf = append(e.buf, byte(scalar.KindInvalid))
		return nil
	}

	var flags uint8
	if complete, known := v.KnownComplete(); known && complete {
		flags |= flagComplete
	}
	if v.HasDimensions() {
		flags |= flagDims
	}
	if v.Names() != nil {
		flags |= flagNames
	}
	if v.DimNames() != nil {
		flags |= flagDimNames
	}
	generic := genericAttrNames(v)
	if len(generic) > 0 {
		flags |= flagAttrs
	}

	e.buf = append(e.buf, byte(v.Kind()), flags)
	e.uvarint(uint64(v.Len()))
	if err := e.elements(v, depth); err != nil {
		return err
	}

	if flags&flagDims != 0 {
		dims := v.Dimensions()
		e.uvarint(uint64(len(dims)))
		for _, d := range dims {
			e.uvarint(uint64(d))
		}
	}
	if flags&flagNames != 0 {
		if err := e.value(v.Names(), depth+1); err != nil {
			return err
		}
	}
	if flags&flagDimNames != 0 {
		if err := e.value(v.DimNames(), depth+1); err != nil {
			return err
		}
	}
	if flags&flagAttrs != 0 {
		e.uvarint(uint64(len(generic)))
		for _, name := range generic {
			val, _ := v.Attr(name)
			e.str(name)
			if err := e.element(val, depth); err != nil {
				return fmt.Errorf("attribute %q: %w", name, err)
			}
		}
	}
	return nil
}

func (e *encoder) elements(v *vector.Vector, depth int) error {
	switch v.Kind() {
	case scalar.KindRaw:
		d, _ := vector.Data[byte](v)
		e.buf = append(e.buf, d...)
	case scalar.KindLogical:
		d, _ := vector.Data[scalar.Logical](v)
		for _, x := range d {
			e.buf = append(e.buf, byte(x))
		}
	case scalar.KindInteger:
		d, _ := vector.Data[int32](v)
		for _, x := range d {
			e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(x))
		}
	case scalar.KindDouble:
		d, _ := vector.Data[float64](v)
		for _, x := range d {
			e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(x))
		}
	case scalar.KindComplex:
		d, _ := vector.Data[complex128](v)
		for _, x := range d {
			e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(real(x)))
			e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(imag(x)))
		}
	case scalar.KindCharacter:
		d, _ := vector.Data[string](v)
		for _, x := range d {
			if scalar.IsNAString(x) {
				e.uvarint(0)
				continue
			}
			e.uvarint(uint64(len(x)) + 1)
			e.buf = append(e.buf, x...)
		}
	case scalar.KindList:
		d, _ := vector.Data[any](v)
		for i, x := range d {
			if err := e.element(x, depth); err != nil {
				return fmt.Errorf("list element %d: %w", i, err)
			}
		}
	}
	return nil
}

func (e *encoder) element(x any, depth int) error {
	switch ev := x.(type) {
	case nil:
		return e.value(nil, depth+1)
	case *vector.Vector:
		return e.value(ev, depth+1)
	default:
		return &UnsupportedValueError{Type: fmt.Sprintf("%T", x)}
	}
}

func genericAttrNames(v *vector.Vector) []string {
	var out []string
	for _, name := range v.AttrNames() {
		if !attr.IsReserved(name) {
			out = append(out, name)
		}
	}
	return out
}
