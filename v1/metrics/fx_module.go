package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/verdant-labs/dbcore/v1/logger"
)

// FXModule provides the metrics component to an fx application: the *Metrics
// instance, a metrics-backed DatabaseObserver ready to hand to a database
// client, and the lifecycle hooks running the /metrics HTTP server.
//
// A metrics.Config must be available in the dependency container:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(metrics.FromEnv),
//	    fx.Invoke(func(db *postgres.Postgres, obs *metrics.DatabaseObserver, m *metrics.Metrics) {
//	        db.WithObserver(obs)
//	        m.RegisterDBStats("postgres", db.Stats)
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		NewDatabaseObserver,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle runs the Prometheus HTTP server for the
// application's lifetime: ListenAndServe in a goroutine on start, graceful
// Shutdown on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("prometheus metrics server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
