package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func pgError(code, message string) *pgconn.PgError {
	return &pgconn.PgError{Severity: "ERROR", Code: code, Message: message}
}

func TestClassifyErrorKnownCodes(t *testing.T) {
	tests := []struct {
		name string
		code string
		kind error
	}{
		{"unique violation", "23505", ErrUniqueViolation},
		{"foreign key violation", "23503", ErrForeignKeyViolation},
		{"connection exception", "08000", ErrConnectionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := pgError(tt.code, "server message")

			derr := ClassifyError(cause)
			if derr == nil {
				t.Fatalf("expected classification for code %s", tt.code)
			}
			if !errors.Is(derr, tt.kind) {
				t.Fatalf("expected error to match %v", tt.kind)
			}
			if derr.Kind() != tt.kind {
				t.Fatalf("expected kind %v, got %v", tt.kind, derr.Kind())
			}
			if derr.Code() != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, derr.Code())
			}
			if derr.Unwrap() != cause {
				t.Fatalf("expected Unwrap to return the original driver error")
			}

			var pgErr *pgconn.PgError
			if !errors.As(derr, &pgErr) || pgErr != cause {
				t.Fatalf("expected errors.As to recover the driver error")
			}
		})
	}
}

func TestClassifyErrorWrappedDriverError(t *testing.T) {
	cause := pgError("23505", "duplicate key")
	wrapped := fmt.Errorf("creating account: %w", cause)

	derr := ClassifyError(wrapped)
	if derr == nil {
		t.Fatalf("expected classification through the wrap")
	}
	if !errors.Is(derr, ErrUniqueViolation) {
		t.Fatalf("expected unique violation kind")
	}
	if derr.Unwrap() != wrapped {
		t.Fatalf("expected Unwrap to return the error exactly as surfaced")
	}
	if !errors.Is(derr, cause) {
		t.Fatalf("expected the driver error to stay in the chain")
	}
}

func TestClassifyErrorUnrecognized(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"plain error", errors.New("boom")},
		{"wrapped plain error", fmt.Errorf("outer: %w", errors.New("inner"))},
		{"check violation", pgError("23514", "check constraint violated")},
		{"not null violation", pgError("23502", "null value in column")},
		{"serialization failure", pgError("40001", "could not serialize access")},
		{"connection does not exist", pgError("08003", "connection does not exist")},
		{"gorm record not found", gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if derr := ClassifyError(tt.err); derr != nil {
				t.Fatalf("expected no classification, got %v", derr)
			}
		})
	}
}

func TestClassifiedPreservesUnrecognizedErrors(t *testing.T) {
	cause := errors.New("application failure")
	if got := classified(cause); got != cause {
		t.Fatalf("expected the exact error value back, got %v", got)
	}
	if classified(nil) != nil {
		t.Fatalf("expected nil to stay nil")
	}
	if _, ok := classified(pgError("23505", "dup")).(*DomainError); !ok {
		t.Fatalf("expected a *DomainError for a recognized code")
	}
}

func TestDomainErrorMessageIncludesServerMessage(t *testing.T) {
	derr := ClassifyError(pgError("23505", `duplicate key value violates unique constraint "accounts_email_key"`))
	if derr == nil {
		t.Fatalf("expected classification")
	}

	msg := derr.Error()
	if !strings.Contains(msg, "unique constraint violation") {
		t.Fatalf("expected kind in message, got %q", msg)
	}
	if !strings.Contains(msg, "accounts_email_key") {
		t.Fatalf("expected server message in message, got %q", msg)
	}
}

func TestDomainErrorSurvivesFurtherWrapping(t *testing.T) {
	derr := classified(pgError("23503", "violates foreign key constraint"))
	wrapped := fmt.Errorf("deleting project: %w", derr)

	if !IsForeignKeyViolation(wrapped) {
		t.Fatalf("expected the sentinel to match through the wrap")
	}

	var d *DomainError
	if !errors.As(wrapped, &d) {
		t.Fatalf("expected errors.As to find the domain error")
	}
}

func TestDomainErrorKindsAreDisjoint(t *testing.T) {
	unique := classified(pgError("23505", "dup"))

	if IsForeignKeyViolation(unique) || IsConnectionFailure(unique) || IsConnectionLost(unique) {
		t.Fatalf("unique violation matched a foreign kind")
	}
}

func TestConnectionLostError(t *testing.T) {
	cause := errors.New("ping failed")
	err := &ConnectionLostError{Cause: cause}

	if !errors.Is(err, ErrConnectionLost) {
		t.Fatalf("expected match with ErrConnectionLost")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the cause to stay in the chain")
	}
	if !strings.Contains(err.Error(), "ping failed") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if errors.Is(err, ErrConnectionFailure) {
		t.Fatalf("connection lost must not match the classifier sentinel")
	}
}

func TestPredicates(t *testing.T) {
	unique := classified(pgError("23505", "dup"))
	fk := classified(pgError("23503", "fk"))
	conn := classified(pgError("08000", "conn"))
	lost := &ConnectionLostError{Cause: errors.New("x")}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"unique matches unique", IsUniqueViolation(unique), true},
		{"fk does not match unique", IsUniqueViolation(fk), false},
		{"fk matches fk", IsForeignKeyViolation(fk), true},
		{"conn matches conn", IsConnectionFailure(conn), true},
		{"lost matches lost", IsConnectionLost(lost), true},
		{"conn does not match lost", IsConnectionLost(conn), false},
		{"nil matches nothing", IsUniqueViolation(nil), false},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func BenchmarkClassifyError(b *testing.B) {
	err := fmt.Errorf("creating account: %w", pgError("23505", "dup"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if ClassifyError(err) == nil {
			b.Fatal("expected classification")
		}
	}
}
