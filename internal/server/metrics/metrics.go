// Package metrics counts directory operations per transport and outcome.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
)

// Transport label values.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Recorder holds the collectors of one server process.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New registers the glossary collectors, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "glossary",
				Name:      "operations_total",
				Help:      "Directory operations by transport, operation and outcome.",
			},
			[]string{"transport", "operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "glossary",
				Name:      "operation_duration_seconds",
				Help:      "Directory operation latency by transport and operation.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"transport", "operation"},
		),
	}

	r.registry.MustRegister(
		r.operations,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Observe records one finished operation.
func (r *Recorder) Observe(transport, operation string, outcome common.Outcome, d time.Duration) {
	r.operations.WithLabelValues(transport, operation, outcome.String()).Inc()
	r.duration.WithLabelValues(transport, operation).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
