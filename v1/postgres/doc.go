// Package postgres provides connection lifecycle and transaction coordination
// for PostgreSQL, built on GORM.
//
// The package owns four concerns that application code should not:
//   - Pool acquisition and teardown: one connection pool per service
//     lifetime, opened by New, released by GracefulShutdown, with readiness
//     gated by WaitReady's unbounded jittered retry.
//   - Connection-loss detection: MonitorConnection health-checks the
//     connection in the background; WatchConnection blocks until loss,
//     surfacing a *ConnectionLostError services can treat as a shutdown cue.
//   - Error classification: ClassifyError maps server-reported SQLSTATEs
//     (unique violation, foreign key violation, connection exception) onto a
//     closed set of domain errors. Everything else, including ORM sentinel
//     errors like gorm.ErrRecordNotFound, propagates unchanged.
//   - Transaction bridging: Transaction turns GORM's callback-style
//     primitive into plain control flow with commit-iff-nil semantics and
//     exact error identity, handing the callback a capability that cannot
//     express a nested transaction.
//
// Query content stays with the caller: operations are closures over *gorm.DB,
// and this package only decides where they run and how their failures look.
//
// Basic Usage:
//
//	db, err := postgres.New(postgres.Config{
//		URL: os.Getenv("POSTGRES_URL"),
//		SSL: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.GracefulShutdown()
//
//	if err := db.WaitReady(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	var accounts []Account
//	err = db.Execute(ctx, func(g *gorm.DB) error {
//		return g.Where("active").Find(&accounts).Error
//	})
//
// Error Handling:
//
//	err = db.Create(ctx, &account)
//	switch {
//	case postgres.IsUniqueViolation(err):
//		// the account already exists
//	case err != nil:
//		// raw failure, propagate
//	}
//
// Transactions:
//
//	err = db.Transaction(ctx, func(tx postgres.Executor) error {
//		if err := debit(ctx, tx, from, amount); err != nil {
//			return err // rolls back; Transaction returns this exact error
//		}
//		return credit(ctx, tx, to, amount) // nil commits
//	})
//
// Reusable Queries:
//
//	byEmail := postgres.NewQuery(db,
//		func(ctx context.Context, ex postgres.Executor, email string) (Account, error) {
//			var a Account
//			err := ex.Execute(ctx, func(g *gorm.DB) error {
//				return g.Where("email = ?", email).First(&a).Error
//			})
//			return a, err
//		})
//
//	a, err := byEmail.Run(ctx, "ada@example.com")
//
// FX Module Integration:
//
// This package provides an fx module that gates startup on readiness, runs
// the connection monitor, and releases the pool on shutdown:
//
//	app := fx.New(
//		logger.FXModule,
//		postgres.FXModule,
//		fx.Provide(postgres.FromEnv),
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on Postgres are safe for concurrent use by multiple
// goroutines. The Executor passed to a Transaction callback is not: it is
// bound to a single transaction connection and must not escape the callback.
package postgres
