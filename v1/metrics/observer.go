package metrics

import (
	"github.com/verdant-labs/dbcore/v1/observability"
)

// DatabaseObserver adapts a *Metrics instance to the observability.Observer
// interface so infrastructure packages can report their operations without
// depending on Prometheus directly.
//
// Each observed operation increments the operation counter (labelled with the
// outcome) and records its duration in the operation histogram.
//
// Example:
//
//	m := metrics.NewMetrics(cfg)
//	db.WithObserver(metrics.NewDatabaseObserver(m))
type DatabaseObserver struct {
	metrics *Metrics
}

// NewDatabaseObserver creates an Observer backed by the given Metrics instance.
func NewDatabaseObserver(m *Metrics) *DatabaseObserver {
	return &DatabaseObserver{metrics: m}
}

// ObserveOperation records the completed operation in the built-in metrics.
func (o *DatabaseObserver) ObserveOperation(op observability.OperationContext) {
	if o == nil || o.metrics == nil {
		return
	}

	status := "success"
	if op.Error != nil {
		status = "error"
	}

	o.metrics.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	o.metrics.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
}
