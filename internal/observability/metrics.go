package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the instrumentation for task executions. All methods are
// nil-safe so callers can wire metrics optionally.
type Metrics struct {
	registry *prometheus.Registry

	checksTotal   *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	contactsFound prometheus.Counter
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contactgate_checks_total",
				Help: "Task executions by node and result.",
			},
			[]string{"node", "result"},
		),
		checkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contactgate_check_duration_seconds",
				Help:    "Wall time of task executions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"node"},
		),
		contactsFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "contactgate_contacts_found_total",
				Help: "Total contacts reported across all executions.",
			},
		),
	}
	m.registry.MustRegister(m.checksTotal, m.checkDuration, m.contactsFound)
	return m
}

// ObserveCheck records one task execution.
func (m *Metrics) ObserveCheck(node, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.checksTotal.WithLabelValues(node, result).Inc()
	m.checkDuration.WithLabelValues(node).Observe(elapsed.Seconds())
}

// AddContacts records contact evidence volume.
func (m *Metrics) AddContacts(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.contactsFound.Add(float64(n))
}

// Handler exposes the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
