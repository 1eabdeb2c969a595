package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector describes the metric operations available to application
// code: the built-in database metrics plus factories for registering custom
// counters, histograms, and gauges on the instance registry.
//
// The concrete *Metrics type implements this interface.
type MetricsCollector interface {
	// Default metric methods

	// IncrementOperations increments the database operation counter with
	// component, operation, and status labels.
	IncrementOperations(component, operation, status string)

	// RecordOperationDuration records the duration (in seconds) of a database operation.
	RecordOperationDuration(start time.Time, component, operation string)

	// ObserveOpenConnections sets the connection gauge for a given pool state.
	ObserveOpenConnections(value float64, state string)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}
