// Package observability defines the observer seam shared by all dbcore packages.
//
// Infrastructure packages (postgres, metrics, tracer) report completed operations
// through the Observer interface. Consumers plug in an implementation to collect
// metrics, emit spans, or log operation details; packages never depend on a
// concrete observability backend.
//
// Wiring an observer:
//
//	db, err := postgres.New(cfg)
//	if err != nil {
//	    return err
//	}
//	db.WithObserver(myObserver)
//
// Implementing an observer:
//
//	type loggingObserver struct{ log *zap.Logger }
//
//	func (o *loggingObserver) ObserveOperation(op observability.OperationContext) {
//	    o.log.Info("operation",
//	        zap.String("component", op.Component),
//	        zap.String("operation", op.Operation),
//	        zap.Duration("duration", op.Duration),
//	        zap.Error(op.Error),
//	    )
//	}
//
// The metrics package ships a Prometheus-backed Observer and the tracer package a
// span-emitting one; both can be combined with MultiObserver.
package observability
