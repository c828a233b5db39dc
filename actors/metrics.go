package actors

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "grains"

type runtimeMetrics struct {
	activations        *prometheus.CounterVec
	activationFailures *prometheus.CounterVec
	operations         *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
}

func newRuntimeMetrics() *runtimeMetrics {
	return &runtimeMetrics{
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "activations_total",
			Help:      "Activations created, by actor kind.",
		}, []string{"kind"}),
		activationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "activation_failures_total",
			Help:      "Activations whose construction failed, by actor kind.",
		}, []string{"kind"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "Operations executed by activations.",
		}, []string{"kind", "operation", "outcome"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent executing an operation inside its mailbox turn.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"kind"}),
	}
}

func (m *runtimeMetrics) register(registerer prometheus.Registerer) error {
	if registerer == nil {
		return nil
	}
	for _, collector := range []prometheus.Collector{
		m.activations,
		m.activationFailures,
		m.operations,
		m.operationDuration,
	} {
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

func (m *runtimeMetrics) observeOperation(
	kind Kind,
	operation string,
	err error,
	elapsed time.Duration,
) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.operations.WithLabelValues(kind.String(), operation, outcome).Inc()
	m.operationDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}
