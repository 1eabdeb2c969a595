package postgres

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWatchConnectionReportsLoss(t *testing.T) {
	pg := newTestClient()
	cause := errors.New("ping timeout")
	pg.reportConnectionLoss(cause)

	err := pg.WatchConnection(context.Background())

	var lost *ConnectionLostError
	if !errors.As(err, &lost) {
		t.Fatalf("expected *ConnectionLostError, got %v", err)
	}
	if lost.Cause != cause {
		t.Fatalf("expected cause %v, got %v", cause, lost.Cause)
	}
	if !errors.Is(err, ErrConnectionLost) {
		t.Fatalf("expected match with ErrConnectionLost")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the cause to stay in the chain")
	}
}

func TestWatchConnectionReturnsNilOnShutdown(t *testing.T) {
	pg := newTestClient()
	if err := pg.GracefulShutdown(); err != nil {
		t.Fatalf("GracefulShutdown returned %v", err)
	}

	if err := pg.WatchConnection(context.Background()); err != nil {
		t.Fatalf("expected nil on orderly shutdown, got %v", err)
	}
}

func TestWatchConnectionHonorsContext(t *testing.T) {
	pg := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := pg.WatchConnection(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWatchConnectionBlocksWhileHealthy(t *testing.T) {
	pg := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- pg.WatchConnection(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("WatchConnection returned early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled after cancel, got %v", err)
	}
}

func TestReportConnectionLossDropsWhenFull(t *testing.T) {
	pg := newTestClient()
	first := errors.New("first failure")

	pg.reportConnectionLoss(first)
	pg.reportConnectionLoss(errors.New("second failure"))

	err := pg.WatchConnection(context.Background())
	var lost *ConnectionLostError
	if !errors.As(err, &lost) || lost.Cause != first {
		t.Fatalf("expected the first failure to be delivered, got %v", err)
	}

	select {
	case err := <-pg.errSignal:
		t.Fatalf("expected the second report to be dropped, got %v", err)
	default:
	}
}

func TestMonitorConnectionReportsHealthCheckFailures(t *testing.T) {
	// No client is attached, so every health check fails and the failure
	// must surface through WatchConnection.
	pg := newTestClient()

	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		pg.MonitorConnection(context.Background())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := pg.WatchConnection(ctx)
	var lost *ConnectionLostError
	if !errors.As(err, &lost) {
		t.Fatalf("expected connection loss, got %v", err)
	}
	if lost.Cause == nil {
		t.Fatalf("expected the health-check failure as cause")
	}

	if err := pg.GracefulShutdown(); err != nil {
		t.Fatalf("GracefulShutdown returned %v", err)
	}

	select {
	case <-monitorDone:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop after shutdown")
	}
}

func TestMonitorConnectionStopsOnShutdown(t *testing.T) {
	pg := newTestClient()
	if err := pg.GracefulShutdown(); err != nil {
		t.Fatalf("GracefulShutdown returned %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		pg.MonitorConnection(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop on shutdown")
	}
}

func TestMonitorConnectionStopsOnContextCancel(t *testing.T) {
	pg := newTestClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		pg.MonitorConnection(ctx)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop on context cancellation")
	}
}
