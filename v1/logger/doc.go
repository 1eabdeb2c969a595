// Package logger provides structured logging functionality for Go applications.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing integration,
// and JSON output formatting. It integrates with the fx dependency injection framework
// for easy incorporation into applications.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - LoggerClient struct: Concrete zap-backed implementation
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FX module: Provides *LoggerClient for dependency injection
//
// Consumer packages declare their own small Logger interface with the methods
// they need; *LoggerClient satisfies those interfaces structurally.
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warn, Error, Fatal)
//   - Distributed tracing integration with OpenTelemetry
//   - Trace and span ID extraction from context via TraceFields
//   - JSON output with ISO8601 timestamps directed to stderr
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/verdant-labs/dbcore/v1/logger"
//
//	// Create a new logger (returns concrete *LoggerClient)
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "billing",
//	})
//
//	// Log with structured fields
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//		"ip":      "192.168.1.1",
//	})
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule:
//
//	import (
//		"github.com/verdant-labs/dbcore/v1/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:         "info",
//				EnableTracing: true,
//				ServiceName:   "my-service",
//			}
//		}),
//		fx.Invoke(func(log *logger.LoggerClient) {
//			log.Info("Service started", nil, nil)
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Configuration
//
// The logger can be configured via environment variables (see FromEnv):
//
//	ZAP_LOGGER_LEVEL=debug               # Log level (debug, info, warning, error)
//	ZAP_LOGGER_SERVICE_NAME=my-service   # Value of the "service" field
//	ZAP_LOGGER_ENABLE_TRACING=true       # Enable distributed tracing integration
//
// # Tracing Integration
//
// When tracing is enabled (EnableTracing: true), TraceFields extracts the trace
// and span IDs from a context carrying an active OpenTelemetry span:
//
//	log.Info("query executed", nil, log.TraceFields(ctx))
//
// The returned map contains:
//   - trace_id: The OpenTelemetry trace ID
//   - span_id: The OpenTelemetry span ID
//
// # Thread Safety
//
// All methods on *LoggerClient are safe for concurrent use by multiple
// goroutines.
package logger
