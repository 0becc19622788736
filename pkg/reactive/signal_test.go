package reactive

import (
	"sync"
	"testing"
)

type testObserver struct {
	id         uint64
	dirtyCount int
	mu         sync.Mutex
}

func newTestObserver() *testObserver {
	return &testObserver{id: nextID()}
}

func (o *testObserver) MarkDirty() {
	o.mu.Lock()
	o.dirtyCount++
	o.mu.Unlock()
}

func (o *testObserver) ID() uint64 {
	return o.id
}

func (o *testObserver) getDirtyCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dirtyCount
}

func TestSignalBasic(t *testing.T) {
	count := NewSignal(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestSignalSubscription(t *testing.T) {
	count := NewSignal(0)
	observer := newTestObserver()

	count.Subscribe(observer)

	// Setting should notify
	count.Set(1)
	if observer.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", observer.getDirtyCount())
	}

	// Same value should not notify
	count.Set(1)
	if observer.getDirtyCount() != 1 {
		t.Errorf("same value should not notify, got %d", observer.getDirtyCount())
	}

	// Different value should notify
	count.Set(2)
	if observer.getDirtyCount() != 2 {
		t.Errorf("expected 2 notifications, got %d", observer.getDirtyCount())
	}
}

func TestSignalSubscribeDeduplicates(t *testing.T) {
	count := NewSignal(0)
	observer := newTestObserver()

	count.Subscribe(observer)
	count.Subscribe(observer)

	count.Set(1)
	if observer.getDirtyCount() != 1 {
		t.Errorf("double subscribe should notify once, got %d", observer.getDirtyCount())
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	count := NewSignal(0)
	observer := newTestObserver()

	count.Subscribe(observer)
	count.Set(1)
	count.Unsubscribe(observer)
	count.Set(2)

	if observer.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification after unsubscribe, got %d", observer.getDirtyCount())
	}

	// Unsubscribing an unknown observer is a no-op.
	count.Unsubscribe(newTestObserver())
	count.Unsubscribe(nil)
}

func TestSignalMultipleSubscribers(t *testing.T) {
	count := NewSignal(0)
	observer1 := newTestObserver()
	observer2 := newTestObserver()
	observer3 := newTestObserver()

	count.Subscribe(observer1)
	count.Subscribe(observer2)
	count.Subscribe(observer3)

	count.Set(1)

	for i, o := range []*testObserver{observer1, observer2, observer3} {
		if o.getDirtyCount() != 1 {
			t.Errorf("observer %d: expected 1 notification, got %d", i+1, o.getDirtyCount())
		}
	}
}

func TestSignalWithEquals(t *testing.T) {
	// Treat values within 0.5 of each other as equal.
	pos := NewSignal(0.0).WithEquals(func(a, b float64) bool {
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return diff < 0.5
	})
	observer := newTestObserver()
	pos.Subscribe(observer)

	pos.Set(0.25)
	if observer.getDirtyCount() != 0 {
		t.Errorf("value within tolerance should not notify, got %d", observer.getDirtyCount())
	}

	pos.Set(10)
	if observer.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", observer.getDirtyCount())
	}
}

func TestSignalSliceEquality(t *testing.T) {
	items := NewSignal([]string{"a", "b"})
	observer := newTestObserver()
	items.Subscribe(observer)

	// Equal contents in a fresh slice should not notify.
	items.Set([]string{"a", "b"})
	if observer.getDirtyCount() != 0 {
		t.Errorf("deep-equal slice should not notify, got %d", observer.getDirtyCount())
	}

	items.Set([]string{"a", "b", "c"})
	if observer.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", observer.getDirtyCount())
	}
}

func TestSignalMapEquality(t *testing.T) {
	state := NewSignal(map[string]float64{})
	observer := newTestObserver()
	state.Subscribe(observer)

	state.Set(map[string]float64{})
	if observer.getDirtyCount() != 0 {
		t.Errorf("deep-equal map should not notify, got %d", observer.getDirtyCount())
	}

	state.Set(map[string]float64{"x": -42})
	if observer.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", observer.getDirtyCount())
	}
}

func TestSignalNotifyDuringCallbackSafe(t *testing.T) {
	count := NewSignal(0)

	// An observer that unsubscribes itself while being notified must
	// not deadlock against the subscriber lock.
	var self *ObserverFunc
	self = NewObserverFunc(func() {
		count.Unsubscribe(self)
	})
	count.Subscribe(self)

	count.Set(1)
	count.Set(2)
}

func TestSignalConcurrentAccess(t *testing.T) {
	count := NewSignal(0)
	observer := newTestObserver()
	count.Subscribe(observer)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				count.Update(func(n int) int { return n + 1 })
			}
		}()
	}
	wg.Wait()

	if count.Get() != 1000 {
		t.Errorf("expected 1000 after concurrent updates, got %d", count.Get())
	}
	if observer.getDirtyCount() != 1000 {
		t.Errorf("expected 1000 notifications, got %d", observer.getDirtyCount())
	}
}

func TestBoolSignalToggle(t *testing.T) {
	flag := NewBoolSignal(false)
	observer := newTestObserver()
	flag.Subscribe(observer)

	flag.Toggle()
	if !flag.Get() {
		t.Error("expected true after toggle")
	}

	flag.Toggle()
	if flag.Get() {
		t.Error("expected false after second toggle")
	}

	if observer.getDirtyCount() != 2 {
		t.Errorf("expected 2 notifications, got %d", observer.getDirtyCount())
	}

	// SetFalse on an already-false signal should not notify.
	flag.SetFalse()
	if observer.getDirtyCount() != 2 {
		t.Errorf("redundant SetFalse should not notify, got %d", observer.getDirtyCount())
	}

	flag.SetTrue()
	if !flag.Get() {
		t.Error("expected true after SetTrue")
	}
}

func TestObserverFuncIdentity(t *testing.T) {
	calls := 0
	o := NewObserverFunc(func() { calls++ })

	count := NewSignal(0)
	count.Subscribe(o)
	count.Subscribe(o)

	count.Set(1)
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	if o.ID() == 0 {
		t.Error("observer ID should be non-zero")
	}
}
