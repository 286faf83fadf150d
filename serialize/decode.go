package serialize

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/vector"
)

// Unmarshal decodes a vector encoded by Marshal or Encode. A nil result
// with a nil error is the encoding of NULL.
func Unmarshal(data []byte) (*vector.Vector, error) {
	c, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	payload, err := readBlocks(data[headerSize:], c)
	if err != nil {
		return nil, err
	}

	d := &decoder{buf: payload}
	v, err := d.value(0)
	if err != nil {
		return nil, err
	}
	if d.off != len(d.buf) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(d.buf)-d.off)
	}
	return v, nil
}

// Decode reads r to the end and decodes its contents.
func Decode(r io.Reader) (*vector.Vector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

// Header describes an encoded vector without decoding it.
type Header struct {
	Version     uint8
	Compression Compression
}

// ReadHeader parses the header at the start of data.
func ReadHeader(data []byte) (Header, error) {
	c, err := parseHeader(data)
	if err != nil {
		return Header{}, err
	}
	return Header{Version: data[len(magic)], Compression: c}, nil
}

func parseHeader(data []byte) (Compression, error) {
	if len(data) < headerSize || string(data[:len(magic)]) != magic {
		return 0, ErrInvalidFormat
	}
	if v := data[len(magic)]; v != formatVersion {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	c := Compression(data[len(magic)+1])
	if !c.IsValid() {
		return 0, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, uint8(c))
	}
	return c, nil
}

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) u8() (byte, error) {
	if d.off >= len(d.buf) {
		return 0, fmt.Errorf("%w: unexpected end of payload", ErrCorrupt)
	}
	b := d.buf[d.off]
	d.off++
	return b, nil
}

func (d *decoder) uvarint() (uint64, error) {
	x, n := binary.Uvarint(d.buf[d.off:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad varint at offset %d", ErrCorrupt, d.off)
	}
	d.off += n
	return x, nil
}

// next returns the next n bytes without copying.
func (d *decoder) next(n uint64) ([]byte, error) {
	if n > uint64(len(d.buf)-d.off) {
		return nil, fmt.Errorf("%w: unexpected end of payload", ErrCorrupt)
	}
	b := d.buf[d.off : d.off+int(n)]
	d.off += int(n)
	return b, nil
}

// count reads an element count whose elements take at least width bytes
// each, rejecting counts the remaining payload cannot hold.
func (d *decoder) count(width uint64) (int, error) {
	n, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if width > 0 && n > uint64(len(d.buf)-d.off)/width {
		return 0, fmt.Errorf("%w: count %d exceeds payload", ErrCorrupt, n)
	}
	return int(n), nil
}

func (d *decoder) str() (string, error) {
	n, err := d.uvarint()
	if err != nil {
		return "", err
	}
	b, err := d.next(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) value(depth int) (*vector.Vector, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrCorrupt, maxDepth)
	}
	tag, err := d.u8()
	if err != nil {
		return nil, err
	}
	kind := scalar.Kind(tag)
	if kind == scalar.KindInvalid {
		return nil, nil
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrCorrupt, tag)
	}
	flags, err := d.u8()
	if err != nil {
		return nil, err
	}

	data, err := d.elements(kind, depth)
	if err != nil {
		return nil, err
	}
	v, err := vector.Create(kind, data, vector.Incomplete, nil, nil)
	if err != nil {
		return nil, err
	}
	if flags&flagComplete != 0 && !v.IsComplete() {
		return nil, fmt.Errorf("%w: vector marked complete holds NA", ErrCorrupt)
	}

	if flags&flagDims != 0 {
		n, err := d.count(1)
		if err != nil {
			return nil, err
		}
		dims := make([]int, n)
		for i := range dims {
			x, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			if x > math.MaxInt32 {
				return nil, fmt.Errorf("%w: extent %d", ErrCorrupt, x)
			}
			dims[i] = int(x)
		}
		if err := v.SetDimensions(dims); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	if flags&flagNames != 0 {
		names, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := v.SetNames(names); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	if flags&flagDimNames != 0 {
		dn, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := v.SetDimNames(dn); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	if flags&flagAttrs != 0 {
		n, err := d.count(2)
		if err != nil {
			return nil, err
		}
		for range n {
			name, err := d.str()
			if err != nil {
				return nil, err
			}
			val, err := d.value(depth + 1)
			if err != nil {
				return nil, err
			}
			if val == nil {
				continue
			}
			if err := v.SetAttr(name, val); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
		}
	}
	return v, nil
}

func (d *decoder) elements(kind scalar.Kind, depth int) (any, error) {
	switch kind {
	case scalar.KindRaw:
		n, err := d.count(1)
		if err != nil {
			return nil, err
		}
		b, _ := d.next(uint64(n))
		return append([]byte(nil), b...), nil
	case scalar.KindLogical:
		n, err := d.count(1)
		if err != nil {
			return nil, err
		}
		b, _ := d.next(uint64(n))
		out := make([]scalar.Logical, n)
		for i, x := range b {
			l := scalar.Logical(int8(x))
			if l != scalar.True && l != scalar.False && !scalar.IsNALogical(l) {
				return nil, fmt.Errorf("%w: logical byte %#x", ErrCorrupt, x)
			}
			out[i] = l
		}
		return out, nil
	case scalar.KindInteger:
		n, err := d.count(4)
		if err != nil {
			return nil, err
		}
		b, _ := d.next(uint64(n) * 4)
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
		}
		return out, nil
	case scalar.KindDouble:
		n, err := d.count(8)
		if err != nil {
			return nil, err
		}
		b, _ := d.next(uint64(n) * 8)
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
		}
		return out, nil
	case scalar.KindComplex:
		n, err := d.count(16)
		if err != nil {
			return nil, err
		}
		b, _ := d.next(uint64(n) * 16)
		out := make([]complex128, n)
		for i := range out {
			re := math.Float64frombits(binary.LittleEndian.Uint64(b[i*16:]))
			im := math.Float64frombits(binary.LittleEndian.Uint64(b[i*16+8:]))
			out[i] = complex(re, im)
		}
		return out, nil
	case scalar.KindCharacter:
		n, err := d.count(1)
		if err != nil {
			return nil, err
		}
		out := make([]string, n)
		for i := range out {
			l, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			if l == 0 {
				out[i] = scalar.NAString
				continue
			}
			b, err := d.next(l - 1)
			if err != nil {
				return nil, err
			}
			out[i] = string(b)
		}
		return out, nil
	default:
		n, err := d.count(1)
		if err != nil {
			return nil, err
		}
		out := make([]any, n)
		for i := range out {
			e, err := d.value(depth + 1)
			if err != nil {
				return nil, err
			}
			if e != nil {
				out[i] = e
			}
		}
		return out, nil
	}
}
