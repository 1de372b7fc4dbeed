// Package metrics exposes Prometheus counters for the store, the diagnosis
// flow and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"painmap/internal/core"
	"painmap/internal/llm"
)

const namespace = "painmap"

// Collector holds all metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	DiagnosisRequests  *prometheus.CounterVec
	DiagnosisDuration  prometheus.Histogram
	StoreMutations     *prometheus.CounterVec
	StoreWriteFailures prometheus.Counter
}

// NewCollector creates and registers every metric.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		DiagnosisRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnosis_requests_total",
			Help:      "Finished diagnosis requests by outcome",
		}, []string{"outcome"}),
		DiagnosisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "diagnosis_duration_seconds",
			Help:      "Time spent waiting for the diagnosis provider",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 40, 80},
		}),
		StoreMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_mutations_total",
			Help:      "Pain point store mutations by operation",
		}, []string{"op"}),
		StoreWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_write_failures_total",
			Help:      "Durable writes that failed and were not surfaced",
		}),
	}
	c.registry.MustRegister(
		c.HTTPRequests,
		c.DiagnosisRequests,
		c.DiagnosisDuration,
		c.StoreMutations,
		c.StoreWriteFailures,
	)

	c.DiagnosisRequests.WithLabelValues(string(core.OutcomeSuccess))
	for _, cat := range llm.Categories {
		c.DiagnosisRequests.WithLabelValues(string(cat))
	}
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) StoreMutation(op string) { c.StoreMutations.WithLabelValues(op).Inc() }

func (c *Collector) StoreWriteFailed() { c.StoreWriteFailures.Inc() }

func (c *Collector) DiagnosisFinished(outcome core.Outcome, elapsed time.Duration) {
	c.DiagnosisRequests.WithLabelValues(string(outcome)).Inc()
	c.DiagnosisDuration.Observe(elapsed.Seconds())
}

// HTTPRequest counts one served request. route is the matched pattern, not
// the raw path.
func (c *Collector) HTTPRequest(method, route string, status int) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
