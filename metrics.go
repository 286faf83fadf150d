package rvec

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/rvec/scalar"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
// See package observability for a ready-made Prometheus collector.
type MetricsCollector interface {
	// RecordCast is called after each cast. warned reports whether the cast
	// raised coercion warnings; err is nil if successful.
	RecordCast(from, to scalar.Kind, duration time.Duration, warned bool, err error)

	// RecordCopy is called when a write had to copy a shared vector.
	RecordCopy(kind scalar.Kind, length int)

	// RecordInPlaceWrite is called when a Temporary vector was handed back
	// for writing without a copy.
	RecordInPlaceWrite(kind scalar.Kind)

	// RecordSave is called after each save with the encoded size in bytes.
	RecordSave(bytes int, duration time.Duration, err error)

	// RecordLoad is called after each load with the encoded size in bytes.
	RecordLoad(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCast(scalar.Kind, scalar.Kind, time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordCopy(scalar.Kind, int)                                     {}
func (NoopMetricsCollector) RecordInPlaceWrite(scalar.Kind)                                  {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)                            {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CastCount      atomic.Int64
	CastErrors     atomic.Int64
	CastWarnings   atomic.Int64
	CastTotalNanos atomic.Int64
	CopyCount      atomic.Int64
	CopiedElements atomic.Int64
	InPlaceWrites  atomic.Int64
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveBytes      atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadBytes      atomic.Int64
	LoadTotalNanos atomic.Int64
}

// RecordCast implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCast(_, _ scalar.Kind, duration time.Duration, warned bool, err error) {
	b.CastCount.Add(1)
	b.CastTotalNanos.Add(duration.Nanoseconds())
	if warned {
		b.CastWarnings.Add(1)
	}
	if err != nil {
		b.CastErrors.Add(1)
	}
}

// RecordCopy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCopy(_ scalar.Kind, length int) {
	b.CopyCount.Add(1)
	b.CopiedElements.Add(int64(length))
}

// RecordInPlaceWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInPlaceWrite(scalar.Kind) {
	b.InPlaceWrites.Add(1)
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(int64(bytes))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bytes int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CastCount:      b.CastCount.Load(),
		CastErrors:     b.CastErrors.Load(),
		CastWarnings:   b.CastWarnings.Load(),
		CastAvgNanos:   avg(b.CastTotalNanos.Load(), b.CastCount.Load()),
		CopyCount:      b.CopyCount.Load(),
		CopiedElements: b.CopiedElements.Load(),
		InPlaceWrites:  b.InPlaceWrites.Load(),
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		SaveBytes:      b.SaveBytes.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadBytes:      b.LoadBytes.Load(),
		LoadAvgNanos:   avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CastCount      int64
	CastErrors     int64
	CastWarnings   int64
	CastAvgNanos   int64
	CopyCount      int64
	CopiedElements int64
	InPlaceWrites  int64
	SaveCount      int64
	SaveErrors     int64
	SaveBytes      int64
	LoadCount      int64
	LoadErrors     int64
	LoadBytes      int64
	LoadAvgNanos   int64
}
