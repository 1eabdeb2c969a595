package postgres

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Executor is the capability to run database operations. The pool-backed
// *Postgres implements it for ambient execution; Transaction hands its
// callback a transaction-scoped implementation.
//
// Executor deliberately does not expose Transaction: code written against
// Executor works identically inside and outside a transaction, and opening a
// nested transaction through the capability is impossible to express.
type Executor interface {
	Execute(ctx context.Context, op Operation) error
}

// Client is the full PostgreSQL client interface implemented by *Postgres.
// Application code should usually depend on this interface (or just on
// Executor) rather than the concrete type.
type Client interface {
	Executor

	// Basic CRUD operations. Failures recognized by ClassifyError come
	// back as *DomainError; everything else comes back raw.
	Find(ctx context.Context, dest interface{}, conditions ...interface{}) error
	First(ctx context.Context, dest interface{}, conditions ...interface{}) error
	Create(ctx context.Context, value interface{}) error
	Save(ctx context.Context, value interface{}) error
	Update(ctx context.Context, model interface{}, attrs interface{}) (int64, error)
	UpdateColumn(ctx context.Context, model interface{}, columnName string, value interface{}) (int64, error)
	UpdateColumns(ctx context.Context, model interface{}, columnValues map[string]interface{}) (int64, error)
	UpdateWhere(ctx context.Context, model interface{}, attrs interface{}, condition string, args ...interface{}) (int64, error)
	Delete(ctx context.Context, value interface{}, conditions ...interface{}) (int64, error)
	Count(ctx context.Context, model interface{}, count *int64, conditions ...interface{}) error
	Exec(ctx context.Context, sql string, values ...interface{}) (int64, error)

	// Transaction support. The callback receives the transaction-scoped
	// Executor; the transaction commits iff the callback returns nil.
	Transaction(ctx context.Context, fn func(tx Executor) error) error

	// Schema migration for the given models.
	Migrate(ctx context.Context, models ...interface{}) error

	// Lifecycle and liveness.
	WaitReady(ctx context.Context) error
	MonitorConnection(ctx context.Context)
	WatchConnection(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	GracefulShutdown() error

	// Pool statistics, e.g. for metrics collectors.
	Stats() sql.DBStats

	// Raw GORM access for advanced use cases.
	DB() *gorm.DB
}

var _ Client = (*Postgres)(nil)
var _ Executor = (*txExecutor)(nil)
