package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Find finds records that match the given conditions.
func (p *Postgres) Find(ctx context.Context, dest interface{}, conditions ...interface{}) error {
	start := time.Now()
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		return db.Find(dest, conditions...).Error
	})
	p.observeOperation("find", "", "", time.Since(start), err, 0, nil)
	return err
}

// First finds the first record that matches the given conditions.
func (p *Postgres) First(ctx context.Context, dest interface{}, conditions ...interface{}) error {
	start := time.Now()
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		return db.First(dest, conditions...).Error
	})
	p.observeOperation("first", "", "", time.Since(start), err, 0, nil)
	return err
}

// Create creates a new record.
func (p *Postgres) Create(ctx context.Context, value interface{}) error {
	start := time.Now()
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		return db.Create(value).Error
	})
	p.observeOperation("create", "", "", time.Since(start), err, 0, nil)
	return err
}

// Save updates a record, inserting it if it does not exist.
func (p *Postgres) Save(ctx context.Context, value interface{}) error {
	start := time.Now()
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		return db.Save(value).Error
	})
	p.observeOperation("save", "", "", time.Since(start), err, 0, nil)
	return err
}

// Update updates records of the model type with the given attributes.
// attrs may be a map, a struct, or a name/value pair.
// Returns the number of rows affected.
func (p *Postgres) Update(ctx context.Context, model interface{}, attrs interface{}) (int64, error) {
	start := time.Now()
	var rows int64
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		res := db.Model(model).Updates(attrs)
		rows = res.RowsAffected
		return res.Error
	})
	p.observeOperation("update", "", "", time.Since(start), err, rows, nil)
	return rows, err
}

// UpdateColumn updates a single column on records of the model type.
// Returns the number of rows affected.
func (p *Postgres) UpdateColumn(ctx context.Context, model interface{}, columnName string, value interface{}) (int64, error) {
	start := time.Now()
	var rows int64
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		res := db.Model(model).Update(columnName, value)
		rows = res.RowsAffected
		return res.Error
	})
	p.observeOperation("update_column", "", "", time.Since(start), err, rows, nil)
	return rows, err
}

// UpdateColumns updates multiple columns on records of the model type from
// name/value pairs. Returns the number of rows affected.
func (p *Postgres) UpdateColumns(ctx context.Context, model interface{}, columnValues map[string]interface{}) (int64, error) {
	start := time.Now()
	var rows int64
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		res := db.Model(model).Updates(columnValues)
		rows = res.RowsAffected
		return res.Error
	})
	p.observeOperation("update_columns", "", "", time.Since(start), err, rows, nil)
	return rows, err
}

// UpdateWhere updates records of the model type that match the given
// condition. Returns the number of rows affected.
func (p *Postgres) UpdateWhere(ctx context.Context, model interface{}, attrs interface{}, condition string, args ...interface{}) (int64, error) {
	start := time.Now()
	var rows int64
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		res := db.Model(model).Where(condition, args...).Updates(attrs)
		rows = res.RowsAffected
		return res.Error
	})
	p.observeOperation("update_where", "", "", time.Since(start), err, rows, nil)
	return rows, err
}

// Delete deletes records that match the given conditions.
// Returns the number of rows affected.
func (p *Postgres) Delete(ctx context.Context, value interface{}, conditions ...interface{}) (int64, error) {
	start := time.Now()
	var rows int64
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		res := db.Delete(value, conditions...)
		rows = res.RowsAffected
		return res.Error
	})
	p.observeOperation("delete", "", "", time.Since(start), err, rows, nil)
	return rows, err
}

// Count counts records of the model type that match the given conditions.
func (p *Postgres) Count(ctx context.Context, model interface{}, count *int64, conditions ...interface{}) error {
	start := time.Now()
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		query := db.Model(model)
		if len(conditions) > 0 {
			query = query.Where(conditions[0], conditions[1:]...)
		}
		return query.Count(count).Error
	})
	p.observeOperation("count", "", "", time.Since(start), err, 0, nil)
	return err
}

// Exec executes raw SQL. Returns the number of rows affected.
func (p *Postgres) Exec(ctx context.Context, sql string, values ...interface{}) (int64, error) {
	start := time.Now()
	var rows int64
	err := p.runOperation(ctx, func(db *gorm.DB) error {
		res := db.Exec(sql, values...)
		rows = res.RowsAffected
		return res.Error
	})
	p.observeOperation("exec", "", "", time.Since(start), err, rows, nil)
	return rows, err
}
