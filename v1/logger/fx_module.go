package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the logger component to an fx application. It registers
// the NewLoggerClient constructor and a shutdown hook that flushes buffered
// log entries.
//
// A logger.Config must be available in the dependency container:
//
//	app := fx.New(
//	    fx.Provide(logger.FromEnv),
//	    logger.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers the shutdown hook that syncs the Zap
// logger, so entries still buffered in memory reach their sink before the
// process exits.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
