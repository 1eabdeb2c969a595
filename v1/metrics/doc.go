// Package metrics provides Prometheus-based monitoring and metrics collection
// functionality for Go applications.
//
// The metrics package is designed to provide a standardized observability
// approach with features such as configurable HTTP endpoints for metrics exposure,
// automatic runtime instrumentation, and integration with the Fx dependency
// injection framework.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Built-in database operation counters, latency histograms, and
//     connection-pool gauges
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Optional namespace and service name labelling for multi-service observability
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/verdant-labs/dbcore/v1/metrics"
//
//	// Create a new metrics server (returns concrete *Metrics)
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "billing",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	// Use built-in metrics
//	m.IncrementOperations("postgres", "execute", "success")
//	defer m.RecordOperationDuration(time.Now(), "postgres", "transaction")
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/verdant-labs/dbcore/v1/logger"
//		"github.com/verdant-labs/dbcore/v1/metrics"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "billing",
//			}
//		}),
//		fx.Invoke(func(m *metrics.Metrics) {
//			m.IncrementOperations("postgres", "execute", "success")
//		}),
//	)
//	app.Run()
//
// # Observing Database Clients
//
// The DatabaseObserver adapts a Metrics instance to the observability.Observer
// interface, and RegisterDBStats exposes connection-pool statistics:
//
//	db, _ := postgres.New(pgCfg)
//	db.WithObserver(metrics.NewDatabaseObserver(m))
//	m.RegisterDBStats("postgres", db.Stats)
//
// # Configuration
//
// The metrics server can be configured via environment variables (see FromEnv):
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//	METRICS_NAMESPACE=billing                  # Optional prefix for all metric names
//	METRICS_SERVICE_NAME=billing-api           # Adds service label to all metrics
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics using the factory
// methods, which apply the configured namespace and service label:
//
//	queueDepth := m.CreateGauge("queue_depth", "Jobs waiting in the queue", []string{"queue"})
//	queueDepth.WithLabelValues("billing").Set(42)
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
