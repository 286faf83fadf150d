package scalar

import (
	"fmt"
	"strings"
)

// Kind identifies the element type stored in a vector.
//
// The numeric order of the constants is the coercion precedence: a lower
// kind widens into a higher one. Raw sits at the bottom and only ever widens
// directly into the other operand's kind.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindRaw represents bytes. Raw has no NA.
	KindRaw
	// KindLogical represents three-valued booleans.
	KindLogical
	// KindInteger represents 32-bit integers.
	KindInteger
	// KindDouble represents 64-bit floating point numbers.
	KindDouble
	// KindComplex represents complex numbers.
	KindComplex
	// KindCharacter represents strings.
	KindCharacter
	// KindList represents generic vectors of arbitrary values.
	KindList
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindRaw:       "raw",
	KindLogical:   "logical",
	KindInteger:   "integer",
	KindDouble:    "double",
	KindComplex:   "complex",
	KindCharacter: "character",
	KindList:      "list",
}

// String returns the lowercase kind name as the runtime reports it.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// IsValid reports whether k is one of the defined element kinds.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k <= KindList
}

// IsAtomic reports whether k is a valid kind other than List.
func (k Kind) IsAtomic() bool {
	return k.IsValid() && k != KindList
}

// HasNA reports whether the kind has an NA representation.
func (k Kind) HasNA() bool {
	return k.IsValid() && k != KindRaw
}

// ParseKind parses a kind name. "numeric" is accepted for double and
// "string" for character.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return KindRaw, nil
	case "logical":
		return KindLogical, nil
	case "integer":
		return KindInteger, nil
	case "double", "numeric":
		return KindDouble, nil
	case "complex":
		return KindComplex, nil
	case "character", "string":
		return KindCharacter, nil
	case "list":
		return KindList, nil
	default:
		return KindInvalid, fmt.Errorf("unknown element kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
