package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's Prometheus instruments on its own registry
// so tests can build independent collectors.
type Collector struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	rateLimited     *prometheus.CounterVec
	legCache        *prometheus.CounterVec
	legCacheStores  prometheus.Counter
}

func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightplan_request_duration_seconds",
				Help:    "Time spent processing HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightplan_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightplan_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
			[]string{"path"},
		),
		legCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightplan_leg_cache_total",
				Help: "Leg cache lookups by result",
			},
			[]string{"result"},
		),
		legCacheStores: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "flightplan_leg_cache_stores_total",
				Help: "Leg plans written to the leg cache",
			},
		),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.rateLimited,
		m.legCache,
		m.legCacheStores,
		prometheus.NewGoCollector(),
	)

	return m
}

func (m *Collector) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}

func (m *Collector) RecordRateLimited(path string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(path).Inc()
}

// RecordLegCache counts a cache lookup; result is "hit", "miss" or "error".
func (m *Collector) RecordLegCache(result string) {
	if m == nil {
		return
	}
	m.legCache.WithLabelValues(result).Inc()
}

func (m *Collector) RecordLegCacheStore() {
	if m == nil {
		return
	}
	m.legCacheStores.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
