package query

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordQuery is called after each membership query.
	// found reports the answer, duration is the time taken,
	// err is nil if successful.
	RecordQuery(found bool, duration time.Duration, err error)

	// RecordValidation is called after each oracle comparison.
	// mismatch is true when the set under test disagreed with the oracle.
	RecordValidation(mismatch bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)      {}
func (NoopMetricsCollector) RecordQuery(bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordValidation(bool)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and comparing implementations without external
// dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	QueryCount       atomic.Int64
	QueryHits        atomic.Int64
	QueryErrors      atomic.Int64
	QueryTotalNanos  atomic.Int64
	ValidationChecks atomic.Int64
	ValidationFails  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(found bool, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if found {
		b.QueryHits.Add(1)
	}
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordValidation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValidation(mismatch bool) {
	b.ValidationChecks.Add(1)
	if mismatch {
		b.ValidationFails.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		InsertAvgNanos:   avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		QueryCount:       b.QueryCount.Load(),
		QueryHits:        b.QueryHits.Load(),
		QueryErrors:      b.QueryErrors.Load(),
		QueryAvgNanos:    avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		ValidationChecks: b.ValidationChecks.Load(),
		ValidationFails:  b.ValidationFails.Load(),
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
	InsertCount      int64
	InsertErrors     int64
	InsertAvgNanos   int64
	QueryCount       int64
	QueryHits        int64
	QueryErrors      int64
	QueryAvgNanos    int64
	ValidationChecks int64
	ValidationFails  int64
}
