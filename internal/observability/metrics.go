package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APICollector bundles Prometheus metrics for the state service and provides
// helpers to wire them into HTTP handlers.
type APICollector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	StateQueries     *prometheus.CounterVec
	SolverIterations prometheus.Histogram
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter

	CatalogBodies   prometheus.Gauge
	CatalogStreamed prometheus.Gauge
	CatalogKernels  prometheus.Gauge
}

// NewAPICollector registers state service Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when nil.
func NewAPICollector(reg prometheus.Registerer) (*APICollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "solarsim_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by route, method, and status code.",
	}, []string{"route", "method", "code"})
	requests, err := registerCounterVec(reg, requests, "solarsim_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "solarsim_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"route", "method"})
	durations, err = registerHistogramVec(reg, durations, "solarsim_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "solarsim_state_queries_total",
		Help: "Total number of state derivations, labeled by outcome.",
	}, []string{"outcome"})
	queries, err = registerCounterVec(reg, queries, "solarsim_state_queries_total")
	if err != nil {
		return nil, err
	}

	iterations, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solarsim_kepler_iterations",
		Help:    "Newton iterations taken per Kepler equation solve.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 50},
	}), "solarsim_kepler_iterations")
	if err != nil {
		return nil, err
	}

	hits, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solarsim_state_cache_hits_total",
		Help: "Total number of state cache hits.",
	}), "solarsim_state_cache_hits_total")
	if err != nil {
		return nil, err
	}
	misses, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solarsim_state_cache_misses_total",
		Help: "Total number of state cache misses.",
	}), "solarsim_state_cache_misses_total")
	if err != nil {
		return nil, err
	}

	bodies, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "solarsim_catalog_bodies",
		Help: "Current number of bodies in the loaded catalog.",
	}), "solarsim_catalog_bodies")
	if err != nil {
		return nil, err
	}
	streamed, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "solarsim_catalog_streamed_bodies",
		Help: "Current number of streamed bodies in the loaded catalog.",
	}), "solarsim_catalog_streamed_bodies")
	if err != nil {
		return nil, err
	}
	kernels, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "solarsim_required_kernels",
		Help: "Number of kernels named by the kernel manifest.",
	}), "solarsim_required_kernels")
	if err != nil {
		return nil, err
	}

	return &APICollector{
		gatherer:         gatherer,
		HTTPRequests:     requests,
		HTTPDurations:    durations,
		StateQueries:     queries,
		SolverIterations: iterations,
		CacheHits:        hits,
		CacheMisses:      misses,
		CatalogBodies:    bodies,
		CatalogStreamed:  streamed,
		CatalogKernels:   kernels,
	}, nil
}

// Middleware records request counts and durations for an HTTP route.
func (c *APICollector) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		if c == nil {
			return
		}
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(route, r.Method, fmt.Sprintf("%d", sw.code)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *APICollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveSolverIterations records the Newton iteration count of one Kepler
// equation solve.
func (c *APICollector) ObserveSolverIterations(iterations int) {
	if c == nil || c.SolverIterations == nil {
		return
	}
	c.SolverIterations.Observe(float64(iterations))
}

// RecordStateQuery tallies a state derivation by outcome ("ok" or "error").
func (c *APICollector) RecordStateQuery(outcome string) {
	if c == nil || c.StateQueries == nil {
		return
	}
	c.StateQueries.WithLabelValues(outcome).Inc()
}

// SetCatalogCounts drives the catalog gauges after a (re)load.
func (c *APICollector) SetCatalogCounts(bodies, streamed, kernels int) {
	if c == nil {
		return
	}
	if c.CatalogBodies != nil {
		c.CatalogBodies.Set(float64(bodies))
	}
	if c.CatalogStreamed != nil {
		c.CatalogStreamed.Set(float64(streamed))
	}
	if c.CatalogKernels != nil {
		c.CatalogKernels.Set(float64(kernels))
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
