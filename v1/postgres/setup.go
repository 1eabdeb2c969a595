package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/verdant-labs/dbcore/v1/observability"
)

// Logger defines the interface for logging operations within the postgres package.
// It provides methods for different logging levels to track database operations,
// connection status, and error handling.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=postgres
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Postgres is a wrapper around gorm.DB that owns the connection pool for a
// service lifetime. It provides startup readiness probing, background
// connection-loss monitoring, error classification and transaction bridging.
//
// Concurrency: the active *gorm.DB pointer is stored in an atomic pointer and
// is snapshotted per operation, so operations never block each other at this
// layer; the underlying sql.DB pool serializes per-connection work.
//
// Postgres implements the Client interface.
type Postgres struct {
	cfg      Config
	client   atomic.Pointer[gorm.DB]
	logger   Logger
	observer observability.Observer

	// errSignal carries connection failures from the monitor to
	// WatchConnection. It is never closed; shutdownSignal unblocks watchers.
	errSignal      chan error
	shutdownSignal chan struct{}

	closeShutdownOnce sync.Once

	// probe issues the readiness check used by WaitReady.
	probe func(ctx context.Context) error

	// probeInterval and monitorInterval fall back to the package defaults
	// when zero.
	probeInterval   time.Duration
	monitorInterval time.Duration
}

// New creates a new Postgres instance with the provided configuration. It
// opens the connection pool and sets up the internal state for readiness
// probing and connection monitoring.
//
// Opening does not touch the network: automatic ping is disabled, so a
// database that is still starting up does not fail construction. Call
// WaitReady to block until the database answers queries.
//
// Returns *Postgres concrete type (following Go best practice: "accept
// interfaces, return structs").
func New(cfg Config) (*Postgres, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("error in opening postgres connection pool: %w", err)
	}

	pg := &Postgres{
		cfg:            cfg,
		errSignal:      make(chan error, 1),
		shutdownSignal: make(chan struct{}),
	}
	pg.client.Store(conn)
	pg.probe = pg.selectOneProbe
	return pg, nil
}

// connect opens the GORM handle and configures the connection pool.
//
// TranslateError stays off so raw driver errors reach ClassifyError with
// their SQLSTATE intact, and automatic ping stays off so liveness is decided
// by WaitReady rather than at construction time.
func connect(cfg Config) (*gorm.DB, error) {
	database, err := gorm.Open(
		postgres.Open(cfg.dsn()),
		&gorm.Config{
			TranslateError:       false,
			DisableAutomaticPing: true,
			Logger:               gormlogger.Discard,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	// Set connection pool parameters.
	// If config fields are not set (zero), apply package defaults.
	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = DefaultMaxOpenConns
	}
	maxIdle := cfg.ConnectionDetails.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = DefaultMaxIdleConns
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = DefaultConnMaxLifetime
	}

	databaseInstance.SetMaxOpenConns(maxOpen)
	databaseInstance.SetMaxIdleConns(maxIdle)
	databaseInstance.SetConnMaxLifetime(maxLifetime)
	// Connections are long-lived: idle connections are never evicted for
	// being idle, only for exceeding their lifetime.
	databaseInstance.SetConnMaxIdleTime(0)

	log.Println("INFO: postgres connection pool opened")

	return database, nil
}

// WaitReady blocks until the database answers a trivial liveness query,
// retrying indefinitely with a jittered delay between attempts. Each failed
// attempt is logged at warn level with the attempt number; readiness is
// logged once at info level with the total attempt count.
//
// There is no attempt cap: a database that never becomes ready surfaces as
// the surrounding startup context running out, in which case ctx.Err() is
// returned. Shutting the client down also unblocks WaitReady.
func (p *Postgres) WaitReady(ctx context.Context) error {
	base := p.probeInterval
	if base == 0 {
		base = DefaultProbeInterval
	}

	for attempt := 1; ; attempt++ {
		err := p.probe(ctx)
		if err == nil {
			p.logInfo("postgres is ready", map[string]interface{}{"attempts": attempt})
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.logWarn("postgres is not ready yet", err, map[string]interface{}{"attempt": attempt})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.shutdownSignal:
			return ErrClientClosed
		case <-time.After(jitteredDelay(base)):
		}
	}
}

// jitteredDelay spreads a delay uniformly over [0.5, 1.5) of base.
func jitteredDelay(base time.Duration) time.Duration {
	return time.Duration(float64(base) * (0.5 + rand.Float64()))
}

// selectOneProbe is the default readiness probe: a SELECT 1 round trip
// through the live client.
func (p *Postgres) selectOneProbe(ctx context.Context) error {
	db := p.DB()
	if db == nil {
		return ErrClientClosed
	}
	var one int
	return db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

// healthCheck performs a health check on the database connection. It
// snapshots the current *gorm.DB, then attempts to ping the database with a
// bounded timeout to verify connectivity.
//
// It returns nil if the database is healthy, or an error with details about the issue.
func (p *Postgres) healthCheck() error {
	dbConn := p.DB()
	if dbConn == nil {
		return fmt.Errorf("database client is not initialized")
	}

	db, err := dbConn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance during health check: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultHealthCheckTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed during health check: %w", err)
	}

	return nil
}

// HealthCheck pings the database, bounded by ctx. It is intended for
// readiness and liveness endpoints.
func (p *Postgres) HealthCheck(ctx context.Context) error {
	db := p.DB()
	if db == nil {
		return ErrClientClosed
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// DB returns the current underlying *gorm.DB for advanced use cases. The
// returned handle is a snapshot; do not retain it across reconnections.
func (p *Postgres) DB() *gorm.DB {
	return p.client.Load()
}

// Stats returns the connection pool statistics of the underlying sql.DB.
// It feeds pool gauges (see the metrics package) and returns a zero value
// when the client is not initialized.
func (p *Postgres) Stats() sql.DBStats {
	db := p.DB()
	if db == nil {
		return sql.DBStats{}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

// WithLogger sets the logger for this client and returns the client for
// method chaining.
//
// Example:
//
//	client := client.WithLogger(myLogger).WithObserver(myObserver)
func (p *Postgres) WithLogger(logger Logger) *Postgres {
	p.logger = logger
	return p
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer receives events about database operations
// (e.g., execute, transaction, migrate).
//
// Example:
//
//	client := client.WithLogger(myLogger).WithObserver(myObserver)
func (p *Postgres) WithObserver(observer observability.Observer) *Postgres {
	p.observer = observer
	return p
}

// GracefulShutdown releases the connection pool and unblocks every watcher.
// It is safe to call repeatedly; only the first call has an effect.
func (p *Postgres) GracefulShutdown() error {
	p.closeShutdownOnce.Do(func() {
		close(p.shutdownSignal)
	})

	db := p.DB()
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}

func (p *Postgres) logInfo(msg string, fields map[string]interface{}) {
	if p.logger == nil {
		return
	}
	p.logger.Info(msg, nil, fields)
}

func (p *Postgres) logWarn(msg string, err error, fields map[string]interface{}) {
	if p.logger == nil {
		return
	}
	p.logger.Warn(msg, err, fields)
}

func (p *Postgres) logError(msg string, err error, fields map[string]interface{}) {
	if p.logger == nil {
		return
	}
	p.logger.Error(msg, err, fields)
}
