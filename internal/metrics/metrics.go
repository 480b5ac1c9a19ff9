// Package metrics tracks event processing counters for the status line.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics counts processed keyboard reports. Counters are atomic so the
// viewer can snapshot them while the pipeline runs.
type Metrics struct {
	rawTotal  atomic.Uint64
	emitted   atomic.Uint64
	discarded atomic.Uint64
	adjusted  atomic.Uint64
	filtered  atomic.Uint64
	startTime time.Time
}

// New creates a metrics tracker.
func New() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordRaw counts an incoming raw report.
func (m *Metrics) RecordRaw() {
	m.rawTotal.Add(1)
}

// RecordEmitted counts a normalized event, noting whether any
// adjustment was applied.
func (m *Metrics) RecordEmitted(wasAdjusted bool) {
	m.emitted.Add(1)
	if wasAdjusted {
		m.adjusted.Add(1)
	}
}

// RecordDiscarded counts a report the normalizer suppressed.
func (m *Metrics) RecordDiscarded() {
	m.discarded.Add(1)
}

// RecordFiltered counts an event rejected by the user filter.
func (m *Metrics) RecordFiltered() {
	m.filtered.Add(1)
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	RawTotal  uint64
	Emitted   uint64
	Discarded uint64
	Adjusted  uint64
	Filtered  uint64
	Uptime    time.Duration
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RawTotal:  m.rawTotal.Load(),
		Emitted:   m.emitted.Load(),
		Discarded: m.discarded.Load(),
		Adjusted:  m.adjusted.Load(),
		Filtered:  m.filtered.Load(),
		Uptime:    time.Since(m.startTime),
	}
}
