package reactive

import (
	"runtime"
	"sync"
)

// batchState holds the batch bookkeeping for one goroutine.
type batchState struct {
	// depth tracks nested Batch calls. Signal updates queue their
	// notifications while depth > 0.
	depth int

	// pending accumulates observers to notify when the outermost
	// batch completes. Deduplicated by ID before notification.
	pending []Observer
}

// batchStates maps goroutine IDs to their active batch state.
// Entries exist only while a batch is running on that goroutine.
var batchStates sync.Map

// goroutineID extracts the current goroutine's ID from the runtime
// stack. The trace begins "goroutine <id> ".
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// queuePending records an observer for notification after the current
// batch completes. Reports false when no batch is active on this
// goroutine, in which case the caller notifies immediately.
func queuePending(o Observer) bool {
	st, ok := batchStates.Load(goroutineID())
	if !ok {
		return false
	}
	state := st.(*batchState)
	state.pending = append(state.pending, o)
	return true
}

// Batch groups multiple signal updates into a single notification
// phase. All updates within fn are collected, deduplicated by observer
// ID, and flushed once when the outermost batch completes.
//
// Batches nest; notifications fire only when the outermost batch ends.
//
//	reactive.Batch(func() {
//	    records.Set(next)
//	    expanded.SetFalse()
//	})
//	// Subscribers are notified once.
func Batch(fn func()) {
	gid := goroutineID()

	var state *batchState
	if st, ok := batchStates.Load(gid); ok {
		state = st.(*batchState)
	} else {
		state = &batchState{}
		batchStates.Store(gid, state)
	}
	state.depth++

	defer func() {
		state.depth--
		if state.depth == 0 {
			pending := state.pending
			batchStates.Delete(gid)
			notifyPending(pending)
		}
	}()

	fn()
}

// notifyPending deduplicates queued observers by ID and marks each
// dirty exactly once.
func notifyPending(pending []Observer) {
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(pending))
	for _, o := range pending {
		id := o.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		o.MarkDirty()
	}
}
