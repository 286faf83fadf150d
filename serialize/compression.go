package serialize

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// DefaultBlockSize is the payload size compressed as one block.
const DefaultBlockSize = 256 * 1024

// MaxBlockSize bounds the block size accepted by writers and readers.
const MaxBlockSize = 64 << 20

const blockHeaderSize = 8

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// appendBlock appends block data, with its header, to dst. The block is
// stored as is when compression saves less than 10%.
func appendBlock(dst, data []byte, c Compression) ([]byte, error) {
	var compressed []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	}

	stored := len(compressed) > 0 && float64(len(compressed)) <= float64(len(data))*0.9
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))
	if !stored {
		dst = binary.LittleEndian.AppendUint32(dst, 0)
		return append(dst, data...), nil
	}
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed)))
	return append(dst, compressed...), nil
}

// writeBlocks splits payload into blocks and writes them to w.
func writeBlocks(w io.Writer, payload []byte, c Compression, blockSize int) (int64, error) {
	var written int64
	var frame []byte
	for len(payload) > 0 {
		n := min(blockSize, len(payload))
		var err error
		frame, err = appendBlock(frame[:0], payload[:n], c)
		if err != nil {
			return written, err
		}
		m, err := w.Write(frame)
		written += int64(m)
		if err != nil {
			return written, err
		}
		payload = payload[n:]
	}
	return written, nil
}

// readBlocks decompresses every block of data and returns the payload.
func readBlocks(data []byte, c Compression) ([]byte, error) {
	var out []byte
	for off := 0; off < len(data); {
		if len(data)-off < blockHeaderSize {
			return nil, fmt.Errorf("%w: truncated block header", ErrCorrupt)
		}
		size := int(binary.LittleEndian.Uint32(data[off:]))
		csize := int(binary.LittleEndian.Uint32(data[off+4:]))
		off += blockHeaderSize
		if size > MaxBlockSize {
			return nil, fmt.Errorf("%w: block of %d bytes", ErrCorrupt, size)
		}

		if csize == 0 {
			if len(data)-off < size {
				return nil, fmt.Errorf("%w: block extends beyond data", ErrCorrupt)
			}
			out = append(out, data[off:off+size]...)
			off += size
			continue
		}

		if len(data)-off < csize {
			return nil, fmt.Errorf("%w: compressed block extends beyond data", ErrCorrupt)
		}
		block, err := decompressBlock(data[off:off+csize], size, c)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
		off += csize
	}
	return out, nil
}

func decompressBlock(compressed []byte, size int, c Compression) ([]byte, error) {
	result := make([]byte, size)
	switch c {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressed, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if n != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressed, result[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if len(decoded) != size {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: compressed block in uncompressed stream", ErrCorrupt)
	}
}
