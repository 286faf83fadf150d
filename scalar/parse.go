package scalar

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseDouble parses a numeral the way character coercion does. Surrounding
// whitespace is ignored; decimal, scientific and hexadecimal forms as well as
// Inf, -Inf and NaN are accepted.
//
// The NA sentinel, the literal "NA" and blank strings yield NADouble with
// ok == true: they are missing, not malformed. ok is false only for text that
// is not a numeral.
func ParseDouble(s string) (v float64, ok bool) {
	if s == NAString {
		return NADouble, true
	}
	t := strings.TrimSpace(s)
	if t == "" || t == "NA" {
		return NADouble, true
	}
	if v, ok := parseHexInteger(t); ok {
		return v, true
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		// Overflow saturates to ±Inf (or underflows to 0).
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return NADouble, false
	}
	return v, true
}

func parseHexInteger(t string) (float64, bool) {
	neg := false
	switch {
	case strings.HasPrefix(t, "-"):
		neg = true
		t = t[1:]
	case strings.HasPrefix(t, "+"):
		t = t[1:]
	}
	if len(t) < 3 || t[0] != '0' || (t[1] != 'x' && t[1] != 'X') {
		return 0, false
	}
	u, err := strconv.ParseUint(t[2:], 16, 64)
	if err != nil {
		return 0, false
	}
	v := float64(u)
	if neg {
		v = -v
	}
	return v, true
}

// ParseLogical parses the spellings accepted for logical coercion. Unknown
// text yields NALogical with ok == false.
func ParseLogical(s string) (v Logical, ok bool) {
	if s == NAString {
		return NALogical, true
	}
	switch strings.TrimSpace(s) {
	case "TRUE", "true", "True", "T":
		return True, true
	case "FALSE", "false", "False", "F":
		return False, true
	case "NA", "":
		return NALogical, true
	default:
		return NALogical, false
	}
}

// ParseComplex parses "re+imi", "imi" or a plain real numeral.
func ParseComplex(s string) (v complex128, ok bool) {
	if s == NAString {
		return NAComplex, true
	}
	t := strings.TrimSpace(s)
	if t == "" || t == "NA" {
		return NAComplex, true
	}
	if !strings.HasSuffix(t, "i") {
		re, ok := ParseDouble(t)
		if !ok {
			return NAComplex, false
		}
		if IsNADouble(re) {
			return NAComplex, true
		}
		return complex(re, 0), true
	}

	body := t[:len(t)-1]
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if (body[i] == '+' || body[i] == '-') && body[i-1] != 'e' && body[i-1] != 'E' {
			split = i
			break
		}
	}

	reText, imText := "0", body
	if split > 0 {
		reText, imText = body[:split], body[split:]
	}
	re, okRe := parseComplexPart(reText)
	im, okIm := parseComplexPart(imText)
	if !okRe || !okIm {
		return NAComplex, false
	}
	return complex(re, im), true
}

func parseComplexPart(t string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}
