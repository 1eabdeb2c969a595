package observability

// MultiObserver fans a single observation out to several observers, letting a
// service report the same operation to metrics and tracing at once.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver creates an Observer that forwards each observation to every
// non-nil observer in order.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	return &MultiObserver{observers: filtered}
}

// ObserveOperation forwards the operation context to all registered observers.
func (m *MultiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m.observers {
		o.ObserveOperation(ctx)
	}
}
