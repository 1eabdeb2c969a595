package observability

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// recordingObserver captures observations for assertions.
type recordingObserver struct {
	mu  sync.Mutex
	ops []OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, ctx)
}

func (r *recordingObserver) observed() []OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]OperationContext, len(r.ops))
	copy(out, r.ops)
	return out
}

func TestNoOpObserver(t *testing.T) {
	obs := NewNoOpObserver()
	if obs == nil {
		t.Fatal("NewNoOpObserver returned nil")
	}

	// Must accept any context without side effects.
	obs.ObserveOperation(OperationContext{})
	obs.ObserveOperation(OperationContext{
		Component: "postgres",
		Operation: "execute",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("boom"),
		Metadata:  map[string]interface{}{"attempt": 1},
	})
}

func TestMultiObserverFanOut(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	multi := NewMultiObserver(first, second)

	op := OperationContext{
		Component: "postgres",
		Operation: "transaction",
		Resource:  "accounts",
		Duration:  time.Millisecond,
		Size:      2,
	}
	multi.ObserveOperation(op)

	for i, obs := range []*recordingObserver{first, second} {
		got := obs.observed()
		if len(got) != 1 {
			t.Fatalf("observer %d saw %d operations, want 1", i, len(got))
		}
		if got[0].Component != "postgres" || got[0].Operation != "transaction" {
			t.Errorf("observer %d saw %q/%q, want postgres/transaction", i, got[0].Component, got[0].Operation)
		}
		if got[0].Size != 2 {
			t.Errorf("observer %d saw size %d, want 2", i, got[0].Size)
		}
	}
}

func TestMultiObserverSkipsNil(t *testing.T) {
	rec := &recordingObserver{}
	multi := NewMultiObserver(nil, rec, nil)

	multi.ObserveOperation(OperationContext{Component: "postgres", Operation: "probe"})
	multi.ObserveOperation(OperationContext{Component: "postgres", Operation: "probe"})

	if got := len(rec.observed()); got != 2 {
		t.Fatalf("recording observer saw %d operations, want 2", got)
	}
}

func TestMultiObserverEmpty(t *testing.T) {
	multi := NewMultiObserver()
	// Must not panic with no observers registered.
	multi.ObserveOperation(OperationContext{Component: "postgres", Operation: "execute"})
}

func BenchmarkMultiObserver(b *testing.B) {
	multi := NewMultiObserver(&NoOpObserver{}, &NoOpObserver{})
	op := OperationContext{Component: "postgres", Operation: "execute"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		multi.ObserveOperation(op)
	}
}
