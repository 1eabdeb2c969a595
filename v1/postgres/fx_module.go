package postgres

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/verdant-labs/dbcore/v1/observability"
)

// FXModule is an fx module that provides the Postgres database component.
// It registers the Postgres constructor for dependency injection and sets up
// lifecycle hooks that block startup on database readiness, run the
// connection monitor for the application's lifetime, and release the pool on
// shutdown.
//
// The module exposes both the concrete *Postgres (for lifecycle management)
// and the Client interface (for application code).
var FXModule = fx.Module("postgres",
	fx.Provide(
		NewPostgresClientWithDI, // Returns *Postgres for internal lifecycle
		fx.Annotate(
			ProvideClient,      // Returns Client interface
			fx.As(new(Client)), // Expose as Client interface
		),
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// ProvideClient wraps the concrete *Postgres and returns it as the Client
// interface, so applications can depend on the interface rather than the
// concrete type.
func ProvideClient(pg *Postgres) Client {
	return pg
}

// PostgresParams groups the dependencies needed to create a Postgres client
// via dependency injection. The embedded fx.In marker enables automatic
// injection of the struct fields from the dependency container.
//
// Logger and Observer are optional: without a logger the component stays
// quiet, and without an observer no operation events are emitted.
type PostgresParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewPostgresClientWithDI creates a new Postgres client using dependency
// injection. It delegates to New and chains in the optional logger and
// observer when the container provides them.
//
// Example usage with fx:
//
//	app := fx.New(
//	    postgres.FXModule,
//	    fx.Provide(
//	        postgres.FromEnv, // or func() postgres.Config { ... }
//	    ),
//	)
func NewPostgresClientWithDI(params PostgresParams) (*Postgres, error) {
	client, err := New(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		client = client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}

// PostgresLifeCycleParams groups the dependencies needed for Postgres
// lifecycle management within an fx application.
type PostgresLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Postgres  *Postgres
}

// RegisterPostgresLifecycle registers lifecycle hooks for the Postgres
// database component. It sets up:
//  1. Readiness blocking on application start: WaitReady retries until the
//     database answers or the fx start context runs out.
//  2. Connection monitoring for the application's lifetime.
//  3. Graceful release of the connection pool on application stop.
//
// The function uses a WaitGroup to ensure the monitor goroutine has exited
// before the pool is released.
func RegisterPostgresLifecycle(params PostgresLifeCycleParams) {
	wg := &sync.WaitGroup{}
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Postgres.WaitReady(ctx); err != nil {
				return err
			}

			// The start context ends with startup; the monitor runs
			// until shutdownSignal closes.
			wg.Add(1)
			go func() {
				defer wg.Done()
				params.Postgres.MonitorConnection(context.Background())
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Postgres.closeShutdownOnce.Do(func() {
				close(params.Postgres.shutdownSignal)
			})

			wg.Wait()

			return params.Postgres.GracefulShutdown()
		},
	})
}
