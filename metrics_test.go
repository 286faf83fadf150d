package rvec

import (
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/rvec/scalar"
	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	m.RecordCast(scalar.KindCharacter, scalar.KindDouble, 2*time.Millisecond, true, nil)
	m.RecordCast(scalar.KindDouble, scalar.KindInteger, 4*time.Millisecond, false, errors.New("x"))
	m.RecordCopy(scalar.KindDouble, 10)
	m.RecordInPlaceWrite(scalar.KindDouble)
	m.RecordSave(100, time.Millisecond, nil)
	m.RecordSave(0, time.Millisecond, errors.New("x"))
	m.RecordLoad(100, 2*time.Millisecond, nil)

	stats := m.GetStats()
	assert.EqualValues(t, 2, stats.CastCount)
	assert.EqualValues(t, 1, stats.CastErrors)
	assert.EqualValues(t, 1, stats.CastWarnings)
	assert.EqualValues(t, (3 * time.Millisecond).Nanoseconds(), stats.CastAvgNanos)
	assert.EqualValues(t, 1, stats.CopyCount)
	assert.EqualValues(t, 10, stats.CopiedElements)
	assert.EqualValues(t, 1, stats.InPlaceWrites)
	assert.EqualValues(t, 2, stats.SaveCount)
	assert.EqualValues(t, 1, stats.SaveErrors)
	assert.EqualValues(t, 100, stats.SaveBytes)
	assert.EqualValues(t, 100, stats.LoadBytes)
	assert.EqualValues(t, (2 * time.Millisecond).Nanoseconds(), stats.LoadAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordCast(scalar.KindRaw, scalar.KindList, 0, false, nil)
	m.RecordCopy(scalar.KindRaw, 0)
	m.RecordInPlaceWrite(scalar.KindRaw)
	m.RecordSave(0, 0, nil)
	m.RecordLoad(0, 0, nil)
}
