package logger

import (
	"sync"
	"time"
)

// Metrics tracks per-run operational counts and timings. Thread-safe,
// though the pipeline itself is single-pass.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// Add increments a counter by n.
func (m *Metrics) Add(name string, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += n
}

// RecordTiming records one duration measurement under the given name.
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], d)
}

// Snapshot returns all counters and timing totals as log fields.
func (m *Metrics) Snapshot() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(Fields, len(m.counters)+len(m.timings))
	for name, v := range m.counters {
		out[name] = v
	}
	for name, ds := range m.timings {
		var total time.Duration
		for _, d := range ds {
			total += d
		}
		out[name+"_ms"] = total.Milliseconds()
	}
	return out
}

// Package-level metrics functions using the default tracker

// Add increments a counter on the default metrics tracker.
func Add(name string, n int64) {
	defaultMetrics.Add(name, n)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, d time.Duration) {
	defaultMetrics.RecordTiming(name, d)
}

// MetricsSnapshot returns the default tracker's counters and timings.
func MetricsSnapshot() Fields {
	return defaultMetrics.Snapshot()
}
