package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RefreshCollector exposes Prometheus metrics for the catalog refresh loop.
type RefreshCollector struct {
	gatherer prometheus.Gatherer

	ReloadDuration  prometheus.Histogram
	ReloadsTotal    prometheus.Counter
	ReloadFailures  prometheus.Counter
	LastReloadEpoch prometheus.Gauge
}

// NewRefreshCollector registers refresh metrics against the provided registerer.
func NewRefreshCollector(reg prometheus.Registerer) (*RefreshCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solarsim_catalog_reload_duration_seconds",
		Help:    "Duration of catalog reloads triggered by file changes or the refresh tick.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})
	duration, err := registerHistogram(reg, duration, "solarsim_catalog_reload_duration_seconds")
	if err != nil {
		return nil, err
	}

	reloads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solarsim_catalog_reloads_total",
		Help: "Cumulative number of successful catalog reloads.",
	})
	reloads, err = registerCounter(reg, reloads, "solarsim_catalog_reloads_total")
	if err != nil {
		return nil, err
	}

	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solarsim_catalog_reload_failures_total",
		Help: "Cumulative number of catalog reloads rejected by validation or I/O errors.",
	})
	failures, err = registerCounter(reg, failures, "solarsim_catalog_reload_failures_total")
	if err != nil {
		return nil, err
	}

	lastReload := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "solarsim_catalog_last_reload_timestamp_seconds",
		Help: "Unix timestamp of the last successful catalog reload.",
	})
	lastReload, err = registerGauge(reg, lastReload, "solarsim_catalog_last_reload_timestamp_seconds")
	if err != nil {
		return nil, err
	}

	return &RefreshCollector{
		gatherer:        gatherer,
		ReloadDuration:  duration,
		ReloadsTotal:    reloads,
		ReloadFailures:  failures,
		LastReloadEpoch: lastReload,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *RefreshCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveReload records a successful reload with its duration.
func (c *RefreshCollector) ObserveReload(d time.Duration, at time.Time) {
	if c == nil {
		return
	}
	if c.ReloadDuration != nil {
		c.ReloadDuration.Observe(d.Seconds())
	}
	if c.ReloadsTotal != nil {
		c.ReloadsTotal.Inc()
	}
	if c.LastReloadEpoch != nil {
		c.LastReloadEpoch.Set(float64(at.Unix()))
	}
}

// IncReloadFailures increments the reload failure counter.
func (c *RefreshCollector) IncReloadFailures() {
	if c == nil || c.ReloadFailures == nil {
		return
	}
	c.ReloadFailures.Inc()
}
