package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// txExecutor is the execution capability handed to Transaction callbacks.
// Every operation run through it is bound to the transaction connection, so
// the whole callback settles atomically. It deliberately exposes nothing
// beyond Execute: in particular there is no way to open another transaction
// through it.
type txExecutor struct {
	tx    *gorm.DB
	owner *Postgres
}

func (t *txExecutor) Execute(ctx context.Context, op Operation) error {
	start := time.Now()
	err := classified(op(t.tx.WithContext(ctx)))
	t.owner.observeOperation("execute", "", "transaction", time.Since(start), err, 0, nil)
	return err
}

// Transaction executes fn within a database transaction. The callback
// receives a transaction-scoped Executor; operations run through anything
// else (including the *Postgres the transaction was started on) are not part
// of the transaction.
//
// The transaction commits when fn returns nil and rolls back otherwise. A
// panic escaping fn rolls the transaction back and propagates.
//
// Error identity is preserved: when fn returns a non-nil error, Transaction
// returns that exact value, so errors.Is/As checks written against the
// callback's failures keep working on Transaction's result. Failures of the
// transaction machinery itself (begin or commit) go through the same
// classification as Execute: recognized SQLSTATEs come back as *DomainError,
// anything else comes back raw.
//
// Example:
//
//	err := db.Transaction(ctx, func(tx postgres.Executor) error {
//	    if err := debit(ctx, tx, from, amount); err != nil {
//	        return err
//	    }
//	    return credit(ctx, tx, to, amount)
//	})
func (p *Postgres) Transaction(ctx context.Context, fn func(tx Executor) error) error {
	select {
	case <-p.shutdownSignal:
		return ErrClientClosed
	default:
	}

	db := p.DB()
	if db == nil {
		return ErrClientClosed
	}

	start := time.Now()
	var fnErr error
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txExecutor{tx: tx, owner: p})
		return fnErr
	})
	p.observeOperation("transaction", "", "", time.Since(start), err, 0, nil)

	if err == nil {
		return nil
	}
	// The callback's own failure comes back untouched.
	if fnErr != nil && errors.Is(err, fnErr) {
		return fnErr
	}
	return classified(err)
}
