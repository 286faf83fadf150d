package serialize

import (
	"errors"
	"fmt"
	"strings"
)

const (
	magic         = "RVEC"
	formatVersion = 1
	headerSize    = len(magic) + 2

	// maxDepth bounds the nesting of lists and attribute values.
	maxDepth = 512
)

const (
	flagComplete uint8 = 1 << iota
	flagDims
	flagNames
	flagDimNames
	flagAttrs
)

var (
	// ErrInvalidFormat is returned for input that does not start with the
	// format's magic bytes.
	ErrInvalidFormat = errors.New("serialize: not an encoded vector")
	// ErrUnsupportedVersion is returned for input written by a newer format.
	ErrUnsupportedVersion = errors.New("serialize: unsupported format version")
	// ErrCorrupt is returned when the payload is truncated or inconsistent.
	ErrCorrupt = errors.New("serialize: corrupt payload")
)

// UnsupportedValueError reports a list element or attribute value that is
// neither a vector nor NULL.
type UnsupportedValueError struct {
	Type string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("serialize: cannot encode value of type %s", e.Type)
}

// Compression selects the block compression algorithm.
type Compression uint8

const (
	// CompressionNone stores blocks as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

var compressionNames = [...]string{
	CompressionNone: "none",
	CompressionLZ4:  "lz4",
	CompressionZSTD: "zstd",
}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

// IsValid reports whether c names a known algorithm.
func (c Compression) IsValid() bool {
	return int(c) < len(compressionNames)
}

// ParseCompression parses "none", "lz4" or "zstd" (case-insensitive). The
// empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("serialize: unknown compression %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Compression) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Compression) UnmarshalText(text []byte) error {
	v, err := ParseCompression(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
