package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Operation is a unit of database work. It receives a request-scoped *gorm.DB
// session and returns the outcome; the session must not be retained after the
// operation returns.
type Operation func(db *gorm.DB) error

// Execute runs op against the live connection pool with ctx applied.
//
// Failures that ClassifyError recognizes come back as *DomainError (matching
// their kind sentinel through errors.Is); every other failure, including
// application errors returned from op, comes back exactly as op produced it.
//
// Example:
//
//	err := db.Execute(ctx, func(g *gorm.DB) error {
//	    return g.Where("archived_at IS NOT NULL").Delete(&Report{}).Error
//	})
//	if postgres.IsForeignKeyViolation(err) {
//	    // a live reference still points at one of the reports
//	}
func (p *Postgres) Execute(ctx context.Context, op Operation) error {
	start := time.Now()
	err := p.runOperation(ctx, op)
	p.observeOperation("execute", "", "", time.Since(start), err, 0, nil)
	return err
}

// runOperation applies op to a snapshot of the live client and classifies
// the outcome. It fails fast once the client has shut down.
func (p *Postgres) runOperation(ctx context.Context, op Operation) error {
	select {
	case <-p.shutdownSignal:
		return ErrClientClosed
	default:
	}

	db := p.DB()
	if db == nil {
		return ErrClientClosed
	}
	return classified(op(db.WithContext(ctx)))
}
