// Package tracer provides distributed tracing built on OpenTelemetry.
//
// It wraps the OpenTelemetry SDK behind a small API for creating spans,
// recording errors, attaching attributes, and propagating trace context
// across service boundaries via W3C Trace Context carriers.
//
// Basic Usage:
//
//	import (
//		"context"
//
//		"github.com/verdant-labs/dbcore/v1/logger"
//		"github.com/verdant-labs/dbcore/v1/tracer"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "billing"})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "billing",
//		AppEnv:       "production",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-invoice")
//	defer span.End()
//
//	tracerClient.SetAttributes(span, map[string]interface{}{
//		"invoice.id": invoiceID,
//	})
//
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//		return err
//	}
//
// Propagation Across Services:
//
//	// Sending side: attach the carrier to an outgoing request or message.
//	headers := tracerClient.GetCarrier(ctx)
//
//	// Receiving side: restore the context before creating child spans.
//	ctx = tracerClient.SetCarrierOnContext(r.Context(), headers)
//	ctx, span := tracerClient.StartSpan(ctx, "handle-request")
//	defer span.End()
//
// Database Operation Spans:
//
// NewTracingObserver adapts a Tracer to the observability.Observer interface,
// so completed database operations show up as client spans:
//
//	db = db.WithObserver(tracer.NewTracingObserver(tracerClient))
//
// FX Integration:
//
// FXModule provides the *Tracer to the dependency graph and registers an
// OnStop hook that flushes batched spans on shutdown.
//
// Span export uses OTLP over HTTP; the endpoint is taken from the standard
// OTEL_EXPORTER_OTLP_* environment variables. With EnableExport set to false
// the provider still creates spans, which keeps trace IDs available for log
// correlation without shipping anything out of the process.
//
// All methods on Tracer are safe for concurrent use by multiple goroutines.
package tracer
