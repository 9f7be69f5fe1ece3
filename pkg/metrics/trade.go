package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TradeMetrics registra las operaciones del motor de transacciones.
// Un *TradeMetrics nil es válido y no registra nada.
type TradeMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	value      *prometheus.CounterVec
}

// NewTradeMetrics registra las métricas en reg. Con reg nil devuelve un recolector inerte.
func NewTradeMetrics(reg prometheus.Registerer) *TradeMetrics {
	if reg == nil {
		return &TradeMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trade_operations_total",
		Help: "Operaciones del motor de transacciones por resultado.",
	}, []string{"operation", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trade_operation_duration_seconds",
		Help:    "Duración de las operaciones del motor de transacciones.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	value := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trade_value_total",
		Help: "Valor acumulado de las transacciones persistidas por tipo.",
	}, []string{"type"})
	reg.MustRegister(operations, duration, value)
	return &TradeMetrics{operations: operations, duration: duration, value: value}
}

// Observe registra el resultado ("ok" o el tipo de fallo) y la duración de una operación.
func (m *TradeMetrics) Observe(operation, outcome string, elapsed time.Duration) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
	m.duration.WithLabelValues(normalizeLabel(operation)).Observe(elapsed.Seconds())
}

// AddValue suma el valor de una transacción persistida.
func (m *TradeMetrics) AddValue(txType string, value float64) {
	if m == nil || m.value == nil || value < 0 {
		return
	}
	m.value.WithLabelValues(normalizeLabel(txType)).Add(value)
}

func normalizeLabel(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
