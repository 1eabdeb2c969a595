package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/verdant-labs/dbcore/v1/observability"
)

// TracingObserver adapts a *Tracer to the observability.Observer interface.
// Every observed infrastructure operation is emitted as a client span whose
// start time is back-dated by the operation's duration, so traces reflect the
// real execution window even though observations arrive after completion.
//
// Example:
//
//	tr := tracer.NewClient(cfg, log)
//	db.WithObserver(tracer.NewTracingObserver(tr))
type TracingObserver struct {
	tracer *Tracer
}

// NewTracingObserver creates an Observer backed by the given Tracer.
func NewTracingObserver(t *Tracer) *TracingObserver {
	return &TracingObserver{tracer: t}
}

// ObserveOperation emits a span describing the completed operation.
func (o *TracingObserver) ObserveOperation(op observability.OperationContext) {
	if o == nil || o.tracer == nil {
		return
	}

	end := time.Now()
	start := end.Add(-op.Duration)

	_, span := o.tracer.tracer.Tracer("").Start(
		context.Background(),
		op.Component+"."+op.Operation,
		traceSpan.WithTimestamp(start),
		traceSpan.WithSpanKind(traceSpan.SpanKindClient),
	)

	attrs := []attribute.KeyValue{
		attribute.String("db.system", "postgresql"),
		attribute.String("component", op.Component),
		attribute.String("operation", op.Operation),
	}
	if op.Resource != "" {
		attrs = append(attrs, attribute.String("resource", op.Resource))
	}
	if op.SubResource != "" {
		attrs = append(attrs, attribute.String("sub_resource", op.SubResource))
	}
	if op.Size > 0 {
		attrs = append(attrs, attribute.Int64("rows_affected", op.Size))
	}
	span.SetAttributes(attrs...)

	if op.Error != nil {
		span.RecordError(op.Error)
		span.SetStatus(codes.Error, op.Error.Error())
	}

	span.End(traceSpan.WithTimestamp(end))
}
