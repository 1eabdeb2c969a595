package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Migrate runs schema migrations for the provided models using GORM's
// AutoMigrate. Migration failures go through the same classification as every
// other operation, so for example a migration tripping over leftover
// conflicting rows surfaces as a *DomainError.
func (p *Postgres) Migrate(ctx context.Context, models ...interface{}) error {
	start := time.Now()
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		return db.AutoMigrate(models...)
	})
	p.observeOperation("migrate", "", "", time.Since(start), err, int64(len(models)), nil)
	if err != nil {
		p.logError("postgres migration failed", err, map[string]interface{}{"models": len(models)})
		return err
	}
	p.logInfo("postgres migration complete", map[string]interface{}{"models": len(models)})
	return nil
}
