package logger

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedClient returns a client whose output is captured in memory.
func newObservedClient(level zapcore.Level, tracing bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &LoggerClient{
		Zap:            zap.New(core),
		tracingEnabled: tracing,
	}, logs
}

func TestNewLoggerClientLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"debug", Debug, zap.DebugLevel},
		{"info", Info, zap.InfoLevel},
		{"warning", Warning, zap.WarnLevel},
		{"error", Error, zap.ErrorLevel},
		{"unknown defaults to info", "verbose", zap.InfoLevel},
		{"empty defaults to info", "", zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewLoggerClient(Config{Level: tt.level, ServiceName: "test"})
			if client == nil || client.Zap == nil {
				t.Fatal("NewLoggerClient returned nil client")
			}
			if !client.Zap.Core().Enabled(tt.want) {
				t.Errorf("level %q: core does not enable %v", tt.level, tt.want)
			}
			if tt.want != zap.DebugLevel && client.Zap.Core().Enabled(zap.DebugLevel) {
				t.Errorf("level %q: core unexpectedly enables debug", tt.level)
			}
		})
	}
}

func TestConvertToZapFields(t *testing.T) {
	client, logs := newObservedClient(zap.InfoLevel, false)

	opErr := errors.New("boom")
	client.Info("operation failed", opErr, map[string]interface{}{
		"table": "users",
		"rows":  int64(3),
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["error"] != "boom" {
		t.Errorf("error field = %v, want boom", fields["error"])
	}
	if fields["table"] != "users" {
		t.Errorf("table field = %v, want users", fields["table"])
	}
	if fields["rows"] != int64(3) {
		t.Errorf("rows field = %v, want 3", fields["rows"])
	}
}

func TestLevelFiltering(t *testing.T) {
	client, logs := newObservedClient(zap.WarnLevel, false)

	client.Debug("dropped", nil)
	client.Info("dropped", nil)
	client.Warn("kept", nil)
	client.Error("kept", errors.New("x"))

	if got := logs.Len(); got != 2 {
		t.Fatalf("got %d entries, want 2 (warn and error only)", got)
	}
}

func TestTraceFieldsDisabled(t *testing.T) {
	client, _ := newObservedClient(zap.InfoLevel, false)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	if fields := client.TraceFields(ctx); fields != nil {
		t.Errorf("TraceFields with tracing disabled = %v, want nil", fields)
	}
}

func TestTraceFieldsNoSpan(t *testing.T) {
	client, _ := newObservedClient(zap.InfoLevel, true)

	if fields := client.TraceFields(context.Background()); fields != nil {
		t.Errorf("TraceFields without a span = %v, want nil", fields)
	}
}

func TestTraceFieldsWithSpan(t *testing.T) {
	client, _ := newObservedClient(zap.InfoLevel, true)

	traceID := trace.TraceID{0xab, 0xcd}
	spanID := trace.SpanID{0x12, 0x34}
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	fields := client.TraceFields(ctx)
	if fields == nil {
		t.Fatal("TraceFields returned nil for a valid span context")
	}
	if fields["trace_id"] != traceID.String() {
		t.Errorf("trace_id = %v, want %v", fields["trace_id"], traceID.String())
	}
	if fields["span_id"] != spanID.String() {
		t.Errorf("span_id = %v, want %v", fields["span_id"], spanID.String())
	}
}
