// Package metrics collects search statistics in a private Prometheus registry
// and exports them in the node-exporter textfile format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/farepath/search"
)

// Collector records one observation per completed search. It implements
// search.Recorder and is safe for concurrent use.
type Collector struct {
	reg *prometheus.Registry

	Searches       *prometheus.CounterVec // outcome label: found|trivial|no_route
	SearchDuration prometheus.Histogram
	Expanded       prometheus.Histogram
	Dropped        *prometheus.CounterVec // reason label: limit|dominated
	PeakFrontier   prometheus.Gauge
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "farepath_searches_total",
			Help: "Completed cheapest-route searches by outcome.",
		}, []string{"outcome"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "farepath_search_duration_seconds",
			Help:    "Wall time of a single cheapest-route search.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		Expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "farepath_search_expanded_states",
			Help:    "Path-states popped from the frontier per search.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		Dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "farepath_search_dropped_states_total",
			Help: "Candidate path-states discarded, by reason.",
		}, []string{"reason"}),
		PeakFrontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "farepath_search_peak_frontier",
			Help: "Largest frontier size seen by the most recent search.",
		}),
	}

	reg.MustRegister(c.Searches, c.SearchDuration, c.Expanded, c.Dropped, c.PeakFrontier)

	return c
}

// RecordSearch implements search.Recorder.
func (c *Collector) RecordSearch(r search.Report) {
	c.Searches.WithLabelValues(string(r.Outcome)).Inc()
	c.SearchDuration.Observe(r.Elapsed.Seconds())
	c.Expanded.Observe(float64(r.Stats.Expanded))
	c.Dropped.WithLabelValues("limit").Add(float64(r.Stats.OverLimit))
	c.Dropped.WithLabelValues("dominated").Add(float64(r.Stats.Dominated))
	c.PeakFrontier.Set(float64(r.Stats.PeakFrontier))
}

// Registry exposes the underlying registry as a Gatherer.
func (c *Collector) Registry() prometheus.Gatherer { return c.reg }

// WriteTextfile atomically writes all metrics to path in the Prometheus text
// format, for pickup by a node-exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
