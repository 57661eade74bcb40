package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"GoMergeSort/MergeSort/fork_join"
)

const subsystem = "mergesort"

// Collector exports sort statistics as Prometheus metrics. It implements
// MergeSort.Observer.
type Collector struct {
	sorts    prometheus.Counter
	elements prometheus.Counter
	forked   prometheus.Counter
	inline   prometheus.Counter
	peak     prometheus.Gauge
	duration prometheus.Histogram
}

// NewCollector creates the collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		sorts: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "sorts_total",
			Help:      "Number of completed sorts.",
		}),
		elements: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "elements_total",
			Help:      "Number of elements sorted.",
		}),
		forked: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "tasks_forked_total",
			Help:      "Number of halves sorted on a newly forked task.",
		}),
		inline: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "tasks_inline_total",
			Help:      "Number of halves sorted inline because the task budget was exhausted.",
		}),
		peak: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "peak_active_tasks",
			Help:      "Highest number of concurrently running sort tasks in the last sort.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of a sort.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}),
	}
	reg.MustRegister(c.sorts, c.elements, c.forked, c.inline, c.peak, c.duration)
	return c
}

// ObserveSort records one completed sort.
func (c *Collector) ObserveSort(n int, stats fork_join.Stats, elapsed time.Duration) {
	c.sorts.Inc()
	c.elements.Add(float64(n))
	c.forked.Add(float64(stats.Forked))
	c.inline.Add(float64(stats.Inline))
	c.peak.Set(float64(stats.Peak))
	c.duration.Observe(elapsed.Seconds())
}
