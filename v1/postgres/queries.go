package postgres

import "context"

// QueryDef is a reusable query definition, parameterised by input and result
// types. It expresses the query once against the Executor capability, leaving
// the choice of pool or transaction execution to the call site.
type QueryDef[I, R any] func(ctx context.Context, ex Executor, input I) (R, error)

// Query binds a QueryDef to a default executor, usually the pool-backed
// client. The same Query value can still run against any other executor via
// RunWith, so one definition serves both ambient and transactional callers.
type Query[I, R any] struct {
	base Executor
	def  QueryDef[I, R]
}

// NewQuery binds def to base, producing a reusable, concurrency-safe query.
//
// Example:
//
//	accountByEmail := postgres.NewQuery(db,
//	    func(ctx context.Context, ex postgres.Executor, email string) (Account, error) {
//	        var a Account
//	        err := ex.Execute(ctx, func(g *gorm.DB) error {
//	            return g.Where("email = ?", email).First(&a).Error
//	        })
//	        return a, err
//	    })
//
//	a, err := accountByEmail.Run(ctx, "ada@example.com")
//
//	err = db.Transaction(ctx, func(tx postgres.Executor) error {
//	    a, err := accountByEmail.RunWith(ctx, tx, "ada@example.com")
//	    ...
//	})
func NewQuery[I, R any](base Executor, def QueryDef[I, R]) Query[I, R] {
	return Query[I, R]{base: base, def: def}
}

// Run executes the query against its bound executor.
func (q Query[I, R]) Run(ctx context.Context, input I) (R, error) {
	return q.def(ctx, q.base, input)
}

// RunWith executes the query against ex instead of the bound executor. A nil
// ex falls back to the bound one.
func (q Query[I, R]) RunWith(ctx context.Context, ex Executor, input I) (R, error) {
	if ex == nil {
		ex = q.base
	}
	return q.def(ctx, ex, input)
}
