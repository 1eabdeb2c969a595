package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule wires the tracer into an Uber FX application. It provides a
// *Tracer built from the injected Config and Logger and registers a shutdown
// hook that flushes pending spans before the process exits.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    // other modules...
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle attaches the tracer to the FX lifecycle. The OnStop
// hook shuts down the underlying provider, which flushes any batched spans to
// the exporter. It is invoked automatically by FXModule.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer == nil || tracer.tracer == nil {
				log.Println("WARN: tracer provider is nil, nothing to shut down")
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
