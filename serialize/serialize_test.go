package serialize

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/rvec/scalar"
	"github.com/hupe1980/rvec/testutil"
	"github.com/hupe1980/rvec/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compressions = []Compression{CompressionNone, CompressionLZ4, CompressionZSTD}

func TestRoundTripKinds(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for _, c := range compressions {
		for k := scalar.KindRaw; k <= scalar.KindList; k++ {
			t.Run(c.String()+"/"+k.String(), func(t *testing.T) {
				v := rng.Vector(k, 1000, 0.1)

				data, err := Marshal(v, WithCompression(c), WithBlockSize(1024))
				require.NoError(t, err)

				got, err := Unmarshal(data)
				require.NoError(t, err)
				assert.True(t, vector.Identical(v, got))
				assert.True(t, got.IsTemporary())
			})
		}
	}
}

func TestNABitsRoundTrip(t *testing.T) {
	nan := math.NaN()
	v := vector.NewComplex([]complex128{scalar.NAComplex, complex(nan, 1), complex(1, scalar.NADouble)}, vector.Incomplete)

	data, err := Marshal(v)
	require.NoError(t, err)
	got, err := Unmarshal(data)
	require.NoError(t, err)

	want, _ := vector.Data[complex128](v)
	have, _ := vector.Data[complex128](got)
	for i := range want {
		assert.Equal(t, math.Float64bits(real(want[i])), math.Float64bits(real(have[i])))
		assert.Equal(t, math.Float64bits(imag(want[i])), math.Float64bits(imag(have[i])))
	}
	assert.Equal(t, 2, got.NACount())
}

func TestRoundTripAttributes(t *testing.T) {
	v, err := vector.Create(scalar.KindDouble, []float64{1, 2, 3, 4, 5, 6}, vector.Complete, []int{2, 3}, nil)
	require.NoError(t, err)
	require.NoError(t, v.SetDimNames(vector.NewList([]any{
		vector.NewCharacter([]string{"a", scalar.NAString}, vector.Incomplete),
		nil,
	})))
	require.NoError(t, v.SetNames(vector.NewCharacter([]string{"", "b", "c", "d", "e", "f"}, vector.Complete)))
	require.NoError(t, v.SetAttr("class", vector.NewCharacter([]string{"matrix"}, vector.Complete)))
	require.NoError(t, v.SetAttr("meta", vector.NewList([]any{vector.NewRaw([]byte{1})})))

	data, err := Marshal(v, WithCompression(CompressionZSTD))
	require.NoError(t, err)
	got, err := Unmarshal(data)
	require.NoError(t, err)

	assert.True(t, vector.Identical(v, got))
	assert.Equal(t, []int{2, 3}, got.Dimensions())
	complete, known := got.KnownComplete()
	assert.True(t, known)
	assert.True(t, complete)
}

func TestNull(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEncodeUnsupportedValue(t *testing.T) {
	l := vector.NewList([]any{42})
	_, err := Marshal(l)
	var uv *UnsupportedValueError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "int", uv.Type)
}

func TestDecodeErrors(t *testing.T) {
	good, err := Marshal(vector.NewInteger([]int32{1, 2, 3}, vector.Complete))
	require.NoError(t, err)

	t.Run("magic", func(t *testing.T) {
		_, err := Unmarshal([]byte("NOPE\x01\x00"))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("version", func(t *testing.T) {
		bad := bytes.Clone(good)
		bad[4] = 99
		_, err := Unmarshal(bad)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Unmarshal(good[:len(good)-2])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("trailing", func(t *testing.T) {
		_, err := Unmarshal(append(bytes.Clone(good[:headerSize]), 2, 0, 0, 0, 0, 0, 0, 0, 0, 0))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("huge count", func(t *testing.T) {
		_, err := Unmarshal(rawFrame(t, []byte{byte(scalar.KindDouble), 0, 0xff, 0xff, 0xff, 0xff, 0x0f}))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("complete flag over NA", func(t *testing.T) {
		payload := []byte{byte(scalar.KindDouble), flagComplete, 2}
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(scalar.NADouble))
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(2))
		_, err := Unmarshal(rawFrame(t, payload))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("invalid logical byte", func(t *testing.T) {
		_, err := Unmarshal(rawFrame(t, []byte{byte(scalar.KindLogical), 0, 2, 1, 5}))
		assert.ErrorIs(t, err, ErrCorrupt)
	})
}

func TestDecodeWithoutCompleteFlag(t *testing.T) {
	payload := []byte{byte(scalar.KindLogical), 0, 3, 1, 0xff, 0}
	v, err := Unmarshal(rawFrame(t, payload))
	require.NoError(t, err)

	_, known := v.KnownComplete()
	assert.False(t, known)
	assert.False(t, v.IsComplete())
	assert.Equal(t, 1, v.NACount())
	assert.Equal(t, []uint32{1}, v.NAPositions().ToArray())
}

// rawFrame wraps payload in a header and one uncompressed block.
func rawFrame(t *testing.T, payload []byte) []byte {
	t.Helper()
	frame := append([]byte(magic), formatVersion, byte(CompressionNone))
	frame, err := appendBlock(frame, payload, CompressionNone)
	require.NoError(t, err)
	return frame
}

func TestReadHeader(t *testing.T) {
	data, err := Marshal(vector.NewRaw([]byte{1}), WithCompression(CompressionLZ4))
	require.NoError(t, err)

	h, err := ReadHeader(data)
	require.NoError(t, err)
	assert.Equal(t, uint8(formatVersion), h.Version)
	assert.Equal(t, CompressionLZ4, h.Compression)
}

func TestCompressionShrinksRepetitiveData(t *testing.T) {
	v, err := vector.NA(scalar.KindDouble, 10000)
	require.NoError(t, err)

	plain, err := Marshal(v)
	require.NoError(t, err)
	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		packed, err := Marshal(v, WithCompression(c))
		require.NoError(t, err)
		assert.Less(t, len(packed), len(plain)/4, c.String())
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range compressions {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCompression(" ZSTD ")
	require.NoError(t, err)
	assert.Equal(t, CompressionZSTD, got)

	_, err = ParseCompression("snappy")
	assert.Error(t, err)

	var c Compression
	require.NoError(t, c.UnmarshalText([]byte("lz4")))
	assert.Equal(t, CompressionLZ4, c)
	assert.Equal(t, "compression(9)", Compression(9).String())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.rvec")
	v := vector.NewCharacter([]string{"a", scalar.NAString, "ü"}, vector.Incomplete)

	n, err := WriteFile(path, v, WithCompression(CompressionLZ4))
	require.NoError(t, err)
	assert.Greater(t, n, int64(headerSize))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, vector.Identical(v, got))

	h, err := ReadFileHeader(path)
	require.NoError(t, err)
	assert.Equal(t, Header{Version: formatVersion, Compression: CompressionLZ4}, h)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	short := filepath.Join(t.TempDir(), "short")
	require.NoError(t, os.WriteFile(short, []byte("RV"), 0o600))
	_, err = ReadFileHeader(short)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
