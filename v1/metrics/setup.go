package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated Prometheus registry together with the HTTP
// server that exposes it on /metrics.
type Metrics struct {
	// Server exposes the /metrics endpoint.
	Server *http.Server

	// Registry holds every collector registered by this instance. Each
	// instance keeps its own registry so metric names cannot collide
	// across services running in one process.
	Registry *prometheus.Registry

	// namespace prefixes all metrics created through the helper methods.
	namespace string

	// registerer is the service-labelled view of Registry.
	registerer prometheus.Registerer

	// Built-in database metrics.
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	openConnections   *prometheus.GaugeVec
}

// NewMetrics builds a Metrics instance with an isolated registry, a
// constant service label on every metric, the built-in database operation
// counters, duration histograms, and connection gauges, and an HTTP server
// serving /metrics on cfg.Address.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "billing",
//	    EnableDefaultCollectors: true,
//	}
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// Every metric emitted by this instance carries service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: wrappedRegistry,
	}

	m.operationsTotal = m.createCounterVec("db_operations_total", "Total number of database operations by outcome", []string{"component", "operation", "status"})
	m.operationDuration = m.createHistogramVec("db_operation_duration_seconds", "Duration of database operations in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.openConnections = m.createGaugeVec("db_connections", "Current database connections by state", []string{"state"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.openConnections,
	)

	// Go runtime, process, and build info collectors.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}
