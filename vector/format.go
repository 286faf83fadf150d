package vector

import (
	"strconv"
	"strings"
)

const displayLimit = 10

// String renders v as "kind[len] e0 e1 ...", showing at most ten elements.
func (v *Vector) String() string {
	if v == nil {
		return "NULL"
	}
	var b strings.Builder
	b.WriteString(v.kind.String())
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(v.length))
	b.WriteByte(']')
	display := v.kind.Ops().Display
	for i := range min(v.length, displayLimit) {
		b.WriteByte(' ')
		b.WriteString(display(getElem(v.data, i)))
	}
	if v.length > displayLimit {
		b.WriteString(" ...")
	}
	return b.String()
}
