package postgres

import (
	"time"

	"github.com/verdant-labs/dbcore/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
// This is used internally to track database operations for metrics and tracing.
//
// Notes:
//   - resource: the table or model being operated on, when known
//   - subResource: additional context, such as "transaction" for tx-scoped work
func (p *Postgres) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if p == nil || p.observer == nil {
		return
	}

	p.observer.ObserveOperation(observability.OperationContext{
		Component:   "postgres",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
