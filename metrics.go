package poolist

import "sync/atomic"

// MetricsCollector receives buffer lifecycle events from lists.
// Implement it to integrate with monitoring systems; pool-level counters
// live on bufpool.Pool.Stats instead.
type MetricsCollector interface {
	// RecordGrow is called after a buffer swap to a larger capacity.
	RecordGrow(oldCap, newCap int)

	// RecordShrink is called after a buffer swap to a smaller capacity
	// (SetCapacity or TrimExcess).
	RecordShrink(oldCap, newCap int)

	// RecordRelease is called when a list returns its buffer for good.
	// capacity is the capacity given up.
	RecordRelease(capacity int)
}

// NoopMetricsCollector discards all events. Use when metrics collection
// is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)   {}
func (NoopMetricsCollector) RecordShrink(int, int) {}
func (NoopMetricsCollector) RecordRelease(int)     {}

// BasicMetricsCollector provides simple in-memory counters, safe for
// sharing across lists. Useful for debugging and tests without an
// external monitoring dependency.
type BasicMetricsCollector struct {
	GrowCount    atomic.Int64
	ShrinkCount  atomic.Int64
	ReleaseCount atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int) {
	b.GrowCount.Add(1)
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(oldCap, newCap int) {
	b.ShrinkCount.Add(1)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(capacity int) {
	b.ReleaseCount.Add(1)
}
