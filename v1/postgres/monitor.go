package postgres

import (
	"context"
	"log"
	"time"
)

// MonitorConnection periodically checks the health of the database connection
// and reports failures to WatchConnection. It runs as a goroutine that
// performs health checks at regular intervals (DefaultMonitorInterval) for
// the life of the client.
//
// The function respects context cancellation and shutdown signals, ensuring
// proper resource cleanup and graceful termination when requested.
func (p *Postgres) MonitorConnection(ctx context.Context) {
	interval := p.monitorInterval
	if interval == 0 {
		interval = DefaultMonitorInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.shutdownSignal:
			log.Println("INFO: stopping postgres connection monitor due to shutdown signal")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.healthCheck(); err != nil {
				p.logError("postgres health check failed", err, nil)
				p.reportConnectionLoss(err)
			}
		}
	}
}

// reportConnectionLoss hands a health-check failure to the watcher without
// blocking the monitor loop. With no watcher attached (or one still draining
// an earlier failure) the signal is dropped; the next tick reports again.
func (p *Postgres) reportConnectionLoss(err error) {
	select {
	case p.errSignal <- err:
	default:
	}
}

// WatchConnection blocks until the connection is lost, the client shuts
// down, or ctx is cancelled.
//
// A connection loss detected by MonitorConnection returns a
// *ConnectionLostError carrying the health-check failure as its cause; it
// matches ErrConnectionLost through errors.Is. An orderly shutdown returns
// nil. Cancellation returns ctx.Err(). While the connection stays healthy,
// WatchConnection never returns.
//
// Services typically run it in a goroutine next to their main loop:
//
//	go func() {
//	    if err := db.WatchConnection(ctx); err != nil {
//	        log.Println("database connection lost, shutting down:", err)
//	        cancel()
//	    }
//	}()
func (p *Postgres) WatchConnection(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdownSignal:
		return nil
	case err := <-p.errSignal:
		return &ConnectionLostError{Cause: err}
	}
}
