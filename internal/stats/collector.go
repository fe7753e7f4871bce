// Package stats provides a unified interface for collecting cache
// metrics.
package stats

// Metric names used throughout the library.
const (
	MetricHits      = "hoard_hits_total"
	MetricMisses    = "hoard_misses_total"
	MetricPuts      = "hoard_puts_total"
	MetricEvictions = "hoard_evictions_total"
	MetricSize      = "hoard_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)
}
