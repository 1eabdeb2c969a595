package observability

import "time"

// Observer is a unified interface for observing operations across dbcore packages.
// It allows external code to watch what the infrastructure packages are doing
// (queries, transactions, liveness probes, migrations) without coupling them to a
// specific metrics or tracing implementation.
//
// This interface is optional. Packages work without an observer configured.
type Observer interface {
	// ObserveOperation is called when an infrastructure operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about a completed infrastructure
// operation. The struct is generic enough to describe any component while staying
// useful for metrics and tracing backends.
type OperationContext struct {
	// Component identifies which dbcore package performed the operation.
	// Examples: "postgres", "metrics", "tracer"
	Component string

	// Operation describes what was performed.
	// Examples: "execute", "transaction", "create", "find", "migrate", "probe"
	Operation string

	// Resource identifies the primary resource being operated on.
	// For database operations this is typically the table or model name.
	Resource string

	// SubResource provides additional resource context (optional).
	// For database operations this can be a column or constraint name.
	SubResource string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	// nil indicates a successful operation.
	Error error

	// Size represents the amount of data involved in the operation (optional).
	// For database operations this is the number of rows affected.
	Size int64

	// Metadata carries additional operation-specific information (optional).
	// Examples: {"attempt": 3}, {"isolation": "read committed"}
	Metadata map[string]interface{}
}
