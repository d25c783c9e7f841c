// Package metric provides Prometheus metrics for logmesh.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/logmesh-go/internal/infra/param"
)

const namespace = "logmesh"

// ConfigMetrics records configuration validation outcomes.
// It implements param.Observer.
type ConfigMetrics struct {
	parameterChecks *prometheus.CounterVec
	loads           *prometheus.CounterVec
	lastLoadSuccess prometheus.Gauge
}

// NewConfigMetrics creates the configuration metrics and registers them on reg.
func NewConfigMetrics(reg prometheus.Registerer) *ConfigMetrics {
	m := &ConfigMetrics{
		parameterChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "parameter_checks_total",
			Help:      "Configuration parameter checks by parameter and outcome.",
		}, []string{"parameter", "outcome"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "loads_total",
			Help:      "Configuration loads by result.",
		}, []string{"result"}),
		lastLoadSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "last_load_success",
			Help:      "Whether the last configuration load passed validation (1) or not (0).",
		}),
	}

	reg.MustRegister(m.parameterChecks, m.loads, m.lastLoadSuccess)
	return m
}

// ObserveParameter implements param.Observer.
func (m *ConfigMetrics) ObserveParameter(key string, outcome param.Outcome) {
	m.parameterChecks.WithLabelValues(key, outcome.String()).Inc()
}

// ObserveLoad records the result of a whole configuration load.
func (m *ConfigMetrics) ObserveLoad(err error) {
	if err != nil {
		m.loads.WithLabelValues("failure").Inc()
		m.lastLoadSuccess.Set(0)
		return
	}
	m.loads.WithLabelValues("success").Inc()
	m.lastLoadSuccess.Set(1)
}
