package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores del tracker en un registry propio
// (no el global, para que los tests puedan crear varios).
type Metrics struct {
	Registry *prometheus.Registry

	actions        *prometheus.CounterVec
	persistFailure *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Subsystem: "store",
			Name:      "actions_total",
			Help:      "Store actions by action name and outcome.",
		}, []string{"action", "outcome"}),
		persistFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petcare",
			Name:      "persist_failures_total",
			Help:      "Failed writes to the key-value storage, by key.",
		}, []string{"key"}),
	}

	reg.MustRegister(m.actions, m.persistFailure)
	return m
}

// ObserveAction es nil-safe: un store sin métricas pasa nil.
func (m *Metrics) ObserveAction(action, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) ObservePersistFailure(key string) {
	if m == nil {
		return
	}
	m.persistFailure.WithLabelValues(key).Inc()
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
