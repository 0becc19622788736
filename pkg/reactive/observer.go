package reactive

// Observer is anything that can be notified when a signal changes.
// Components implement it to schedule re-renders; tests implement it
// to count notifications.
type Observer interface {
	// MarkDirty notifies the observer that one of its signals has changed.
	MarkDirty()

	// ID returns a unique identifier for this observer.
	// Used for deduplication on subscribe and during batch flushes.
	ID() uint64
}

// ObserverFunc adapts a plain function to the Observer interface.
// Each value gets its own identity, so subscribing the same
// ObserverFunc twice is deduplicated while two separate wrappers of
// the same function are not.
type ObserverFunc struct {
	id uint64
	fn func()
}

// NewObserverFunc wraps fn as an Observer.
func NewObserverFunc(fn func()) *ObserverFunc {
	return &ObserverFunc{id: nextID(), fn: fn}
}

// MarkDirty invokes the wrapped function.
func (o *ObserverFunc) MarkDirty() {
	if o.fn != nil {
		o.fn()
	}
}

// ID returns the unique identifier for this observer.
func (o *ObserverFunc) ID() uint64 {
	return o.id
}
