// Package metrics defines the Prometheus collectors exported by the
// service: per-route HTTP request accounting and a running total of
// catalog inserts.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// Metrics bundles the registered collectors. Construct one with New and
// share it between the HTTP middleware and the song handler.
type Metrics struct {
	RequestTotal   *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
	SongsTotal     prometheus.Counter
}

// New builds and registers the collectors on the default registry. If a
// collector with the same name is already registered (tests construct
// Metrics repeatedly in one process) the existing one is reused.
func New() *Metrics {
	m := &Metrics{
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "song_catalog",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "song_catalog",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		SongsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "song_catalog",
			Name:      "songs_total",
			Help:      "Total number of songs added to the catalog",
		}),
	}

	collectors := []prometheus.Collector{m.RequestTotal, m.RequestLatency, m.SongsTotal}
	for i, collector := range collectors {
		if err := prometheus.Register(collector); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch i {
				case 0:
					m.RequestTotal = are.ExistingCollector.(*prometheus.CounterVec)
				case 1:
					m.RequestLatency = are.ExistingCollector.(*prometheus.HistogramVec)
				case 2:
					m.SongsTotal = are.ExistingCollector.(prometheus.Counter)
				}
			}
		}
	}
	return m
}

// RecordRequest observes one finished HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.RequestTotal.With(labels).Inc()
	m.RequestLatency.With(labels).Observe(duration.Seconds())
}
