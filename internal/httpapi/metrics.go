package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the query pipeline metrics exposed at /metrics.
type Metrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration prometheus.Histogram
}

// NewMetrics creates and registers the pipeline metrics on the registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "finassist_queries_total",
			Help: "Queries processed, labeled by answering tier and success.",
		}, []string{"tier", "success"}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "finassist_query_duration_seconds",
			Help:    "End-to-end query processing duration in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	reg.MustRegister(m.queriesTotal, m.queryDuration)
	return m
}

// ObserveQuery records one processed query.
func (m *Metrics) ObserveQuery(tier string, success bool, seconds float64) {
	successLabel := "false"
	if success {
		successLabel = "true"
	}
	m.queriesTotal.WithLabelValues(tier, successLabel).Inc()
	m.queryDuration.Observe(seconds)
}
