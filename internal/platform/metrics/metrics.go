// Package metrics exposes Prometheus counters and gauges for the patient desk
// containers. A nil *Metrics is valid and records nothing.
package metrics

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ehr/patientdesk/internal/platform/bounded"
)

const namespace = "patientdesk"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeFull  = "full"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	size       *prometheus.GaugeVec
}

// New creates a Metrics backed by its own registry, so tests and multiple
// servers in one process never collide on the default registerer.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Container operations by component, operation and outcome.",
		}, []string{"component", "operation", "outcome"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "container_size",
			Help:      "Current number of entries held by each component.",
		}, []string{"component"}),
	}
	reg.MustRegister(m.operations, m.size)
	reg.MustRegister(collectors.NewGoCollector())
	return m
}

// Outcome maps an operation error onto its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, bounded.ErrFull):
		return OutcomeFull
	case errors.Is(err, bounded.ErrEmpty):
		return OutcomeEmpty
	default:
		return OutcomeError
	}
}

// Observe counts one operation against component.
func (m *Metrics) Observe(component, operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(component, operation, Outcome(err)).Inc()
}

// SetSize records the current entry count of component.
func (m *Metrics) SetSize(component string, n int) {
	if m == nil {
		return
	}
	m.size.WithLabelValues(component).Set(float64(n))
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the Prometheus text exposition for this registry.
func (m *Metrics) Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return echo.WrapHandler(h)
}
