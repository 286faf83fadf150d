package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// significantDigits is the precision used when a double is turned into text.
const significantDigits = 15

// FormatLogical formats a logical as "TRUE", "FALSE" or "NA".
func FormatLogical(v Logical) string {
	switch v {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "NA"
	}
}

// FormatInteger formats an integer in decimal, or "NA".
func FormatInteger(v int32) string {
	if v == NAInteger {
		return "NA"
	}
	return strconv.FormatInt(int64(v), 10)
}

// FormatDouble formats a double with up to 15 significant digits. Fixed
// notation is used unless scientific notation is strictly shorter, so 1e5
// becomes "1e+05" while 123456 stays "123456".
func FormatDouble(v float64) string {
	switch {
	case IsNADouble(v):
		return "NA"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "0"
	}

	mant, expText, _ := strings.Cut(strconv.FormatFloat(v, 'e', significantDigits-1, 64), "e")
	sign := ""
	if mant[0] == '-' {
		sign = "-"
		mant = mant[1:]
	}
	digits := strings.TrimRight(strings.Replace(mant, ".", "", 1), "0")
	if digits == "" {
		digits = "0"
	}
	exp, _ := strconv.Atoi(expText)

	fixed := fixedNotation(digits, exp)
	sci := scientificNotation(digits, exp)
	if len(sci) < len(fixed) {
		return sign + sci
	}
	return sign + fixed
}

func fixedNotation(digits string, exp int) string {
	if exp < 0 {
		return "0." + strings.Repeat("0", -exp-1) + digits
	}
	if len(digits) <= exp+1 {
		return digits + strings.Repeat("0", exp+1-len(digits))
	}
	return digits[:exp+1] + "." + digits[exp+1:]
}

func scientificNotation(digits string, exp int) string {
	var sb strings.Builder
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte('e')
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}
	fmt.Fprintf(&sb, "%02d", exp)
	return sb.String()
}

// FormatComplex formats a complex number as "re+imi", or "NA".
func FormatComplex(v complex128) string {
	if IsNAComplex(v) {
		return "NA"
	}
	re, im := real(v), imag(v)
	if math.Signbit(im) && !math.IsNaN(im) {
		return FormatDouble(re) + "-" + FormatDouble(-im) + "i"
	}
	return FormatDouble(re) + "+" + FormatDouble(im) + "i"
}

// FormatRaw formats a byte as two lowercase hex digits.
func FormatRaw(v byte) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[v>>4], hex[v&0x0f]})
}

// FormatString returns s unchanged, or "NA" for the character NA.
func FormatString(v string) string {
	if v == NAString {
		return "NA"
	}
	return v
}

// QuoteString returns s quoted for display. The NA is shown unquoted.
func QuoteString(v string) string {
	if v == NAString {
		return "NA"
	}
	return strconv.Quote(v)
}
