package vtest

import (
	"sync"

	"github.com/melba-ui/melba/pkg/toast"
)

// Snapshot is one observed store state.
type Snapshot struct {
	Items    []toast.Item
	Expanded bool
}

// Recorder subscribes to a toast store and captures a snapshot on
// every notification. Dismissal marks a record as exiting before
// removing it; the recorder is how tests observe that intermediate
// state.
//
// Example:
//
//	rec := vtest.NewRecorder(store)
//	defer rec.Stop()
//	store.Dismiss(id)
//	for _, s := range rec.States() { ... }
type Recorder struct {
	cancel func()

	mu     sync.Mutex
	states []Snapshot
}

// NewRecorder starts recording the store. Call Stop when done.
func NewRecorder(store *toast.Store) *Recorder {
	rec := &Recorder{}
	rec.cancel = store.Watch(func() {
		items, expanded := store.Snapshot()
		rec.mu.Lock()
		rec.states = append(rec.states, Snapshot{Items: items, Expanded: expanded})
		rec.mu.Unlock()
	})
	return rec
}

// States returns a copy of every snapshot captured so far, oldest
// first.
func (r *Recorder) States() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.states))
	copy(out, r.states)
	return out
}

// Len returns the number of notifications observed.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Last returns the most recent snapshot, or false if none were
// captured.
func (r *Recorder) Last() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return Snapshot{}, false
	}
	return r.states[len(r.states)-1], true
}

// Stop unsubscribes the recorder from the store.
func (r *Recorder) Stop() {
	r.cancel()
}
