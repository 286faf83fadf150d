package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThat(t *testing.T) {
	assert.NotPanics(t, func() { That(true, "never") })
	if Enabled {
		assert.PanicsWithValue(t, "assertion failed: x=1", func() { That(false, "x=%d", 1) })
	} else {
		assert.NotPanics(t, func() { That(false, "x=%d", 1) })
	}
}
