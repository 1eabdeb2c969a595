package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes recognized by ClassifyError.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateConnectionException = "08000"
)

// Sentinel errors exposed by this package. Classified failures match their
// kind sentinel through errors.Is.
var (
	// ErrUniqueViolation identifies inserts or updates rejected by a
	// unique constraint.
	ErrUniqueViolation = errors.New("postgres: unique constraint violation")

	// ErrForeignKeyViolation identifies operations rejected by a foreign
	// key constraint.
	ErrForeignKeyViolation = errors.New("postgres: foreign key constraint violation")

	// ErrConnectionFailure identifies operations that failed because the
	// server reported a connection exception.
	ErrConnectionFailure = errors.New("postgres: connection failure")

	// ErrConnectionLost is matched by the failure WatchConnection returns
	// when the background monitor detects a broken connection.
	ErrConnectionLost = errors.New("postgres: connection lost")

	// ErrClientClosed is returned by operations issued after the client
	// has been shut down.
	ErrClientClosed = errors.New("postgres: client is closed")
)

// DomainError is the classified form of a PostgreSQL constraint or connection
// failure. Instances are only created by ClassifyError; the error exactly as
// the driver surfaced it stays reachable through Unwrap.
type DomainError struct {
	kind  error
	cause error
	pg    *pgconn.PgError
}

// Error reports the failure kind together with the server's message.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.pg.Message)
}

// Unwrap returns the original driver error.
func (e *DomainError) Unwrap() error { return e.cause }

// Is reports whether target is this error's kind sentinel, so classified
// failures match ErrUniqueViolation, ErrForeignKeyViolation or
// ErrConnectionFailure through errors.Is.
func (e *DomainError) Is(target error) bool { return target == e.kind }

// Kind returns the sentinel identifying which failure class the server
// reported.
func (e *DomainError) Kind() error { return e.kind }

// Code returns the SQLSTATE code reported by the server.
func (e *DomainError) Code() string { return e.pg.Code }

// ClassifyError maps a raw database error onto the package's three-kind
// taxonomy by SQLSTATE code: unique violations (23505), foreign key
// violations (23503) and connection exceptions (08000).
//
// It returns nil when err carries no PostgreSQL server error or when the code
// is not one of the recognized three. Such errors are not domain failures and
// must be propagated unchanged by callers.
func ClassifyError(err error) *DomainError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case sqlstateUniqueViolation:
		return &DomainError{kind: ErrUniqueViolation, cause: err, pg: pgErr}
	case sqlstateForeignKeyViolation:
		return &DomainError{kind: ErrForeignKeyViolation, cause: err, pg: pgErr}
	case sqlstateConnectionException:
		return &DomainError{kind: ErrConnectionFailure, cause: err, pg: pgErr}
	}
	return nil
}

// classified returns the domain form of err when ClassifyError recognizes it,
// and err itself otherwise. All execution paths report errors through this
// single point.
func classified(err error) error {
	if err == nil {
		return nil
	}
	if derr := ClassifyError(err); derr != nil {
		return derr
	}
	return err
}

// ConnectionLostError reports that the background monitor detected a broken
// connection. It wraps the health-check failure that tripped the monitor and
// matches ErrConnectionLost through errors.Is.
type ConnectionLostError struct {
	Cause error
}

func (e *ConnectionLostError) Error() string {
	return fmt.Sprintf("postgres: connection lost: %v", e.Cause)
}

// Unwrap returns the health-check failure that tripped the monitor.
func (e *ConnectionLostError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrConnectionLost.
func (e *ConnectionLostError) Is(target error) bool { return target == ErrConnectionLost }

// IsUniqueViolation checks if the error is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation)
}

// IsForeignKeyViolation checks if the error is a foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, ErrForeignKeyViolation)
}

// IsConnectionFailure checks if the error is a server-reported connection exception.
func IsConnectionFailure(err error) bool {
	return errors.Is(err, ErrConnectionFailure)
}

// IsConnectionLost checks if the error came from the connection monitor.
func IsConnectionLost(err error) bool {
	return errors.Is(err, ErrConnectionLost)
}
