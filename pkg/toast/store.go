package toast

import (
	"github.com/google/uuid"

	"github.com/melba-ui/melba/pkg/reactive"
	"github.com/melba-ui/melba/pkg/vdom"
)

// Store is the observable state behind a toast overlay.
//
// The collection keeps insertion order; the most recently pushed
// record is the front of the stack. Removal is the only structural
// mutation besides append, so order never changes underneath an
// observer.
//
// Every operation is total. Targeting an id that is not in the
// collection is a no-op, never an error.
type Store struct {
	// records holds the collection in insertion order.
	records *reactive.Signal[[]Record]

	// interactions maps record id to its transient gesture state.
	// Kept separate from records so the immutable collection can be
	// copied freely.
	interactions *reactive.Signal[map[ID]Interaction]

	// expanded selects between the stacked and list layouts.
	expanded *reactive.BoolSignal
}

// NewStore creates an empty store in compact mode.
func NewStore() *Store {
	records := reactive.NewSignal([]Record{}).WithEquals(recordsEqual)
	return &Store{
		records:      records,
		interactions: reactive.NewSignal(map[ID]Interaction{}),
		expanded:     reactive.NewBoolSignal(false),
	}
}

// recordsEqual compares collections by id sequence. Records are
// immutable, so two slices with the same ids in the same order hold
// the same state; comparing ids avoids walking content trees.
func recordsEqual(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// Push appends a new record wrapping content and returns its id. The
// record starts at rest: zero drag offset, not exiting.
func (s *Store) Push(content *vdom.VNode) ID {
	return s.PushLevel("", content)
}

// PushLevel appends a new record tagged with a level.
func (s *Store) PushLevel(level Level, content *vdom.VNode) ID {
	id := ID(uuid.NewString())
	rec := Record{ID: id, Level: level, Content: content}

	reactive.Batch(func() {
		s.records.Update(func(rs []Record) []Record {
			next := make([]Record, len(rs), len(rs)+1)
			copy(next, rs)
			return append(next, rec)
		})
		s.interactions.Update(func(m map[ID]Interaction) map[ID]Interaction {
			next := cloneInteractions(m)
			next[id] = Interaction{}
			return next
		})
	})

	return id
}

// Success pushes a standard success notification.
func (s *Store) Success(text string) ID {
	return s.PushLevel(LevelSuccess, Note(text, LevelSuccess.Icon()))
}

// Error pushes a standard error notification.
func (s *Store) Error(text string) ID {
	return s.PushLevel(LevelError, Note(text, LevelError.Icon()))
}

// Warning pushes a standard warning notification.
func (s *Store) Warning(text string) ID {
	return s.PushLevel(LevelWarning, Note(text, LevelWarning.Icon()))
}

// Info pushes a standard info notification.
func (s *Store) Info(text string) ID {
	return s.PushLevel(LevelInfo, Note(text, LevelInfo.Icon()))
}

// Dismiss removes the record with the given id. The record is first
// marked exiting, a notification of its own so renderers see the
// raised z-order before the card leaves, and then dropped from the
// collection together with its interaction state. A dismissal that
// empties the collection forces compact mode. Unknown ids are
// ignored.
func (s *Store) Dismiss(id ID) {
	if _, ok := s.Get(id); !ok {
		return
	}

	s.interactions.Update(func(m map[ID]Interaction) map[ID]Interaction {
		next := cloneInteractions(m)
		it := next[id]
		it.Exiting = true
		next[id] = it
		return next
	})

	reactive.Batch(func() {
		s.records.Update(func(rs []Record) []Record {
			next := make([]Record, 0, len(rs))
			for _, r := range rs {
				if r.ID != id {
					next = append(next, r)
				}
			}
			return next
		})
		s.interactions.Update(func(m map[ID]Interaction) map[ID]Interaction {
			next := cloneInteractions(m)
			delete(next, id)
			return next
		})
		if len(s.records.Get()) == 0 {
			s.expanded.SetFalse()
		}
	})
}

// SetDragOffset records the live horizontal offset for the record with
// the given id. Unknown ids are ignored.
func (s *Store) SetDragOffset(id ID, offset float64) {
	s.interactions.Update(func(m map[ID]Interaction) map[ID]Interaction {
		it, ok := m[id]
		if !ok || it.DragOffset == offset {
			return m
		}
		next := cloneInteractions(m)
		it.DragOffset = offset
		next[id] = it
		return next
	})
}

// ToggleExpanded flips between compact and expanded mode.
func (s *Store) ToggleExpanded() {
	s.expanded.Toggle()
}

// Expanded reports whether the overlay is in expanded (list) mode.
func (s *Store) Expanded() bool {
	return s.expanded.Get()
}

// Records returns a copy of the collection in insertion order.
func (s *Store) Records() []Record {
	rs := s.records.Get()
	out := make([]Record, len(rs))
	copy(out, rs)
	return out
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	return len(s.records.Get())
}

// Get returns the record with the given id, if present.
func (s *Store) Get(id ID) (Record, bool) {
	for _, r := range s.records.Get() {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// DragOffset returns the live drag offset for the record with the
// given id, or zero if the id is unknown.
func (s *Store) DragOffset(id ID) float64 {
	return s.interactions.Get()[id].DragOffset
}

// Exiting reports whether the record with the given id has been
// dismissed and is animating out.
func (s *Store) Exiting(id ID) bool {
	return s.interactions.Get()[id].Exiting
}

// Snapshot returns the collection joined with its interaction state,
// in insertion order, plus the current mode. The result is detached
// from the store; later mutations do not affect it.
func (s *Store) Snapshot() ([]Item, bool) {
	rs := s.records.Get()
	m := s.interactions.Get()

	items := make([]Item, len(rs))
	for i, r := range rs {
		items[i] = Item{Record: r, Interaction: m[r.ID]}
	}
	return items, s.expanded.Get()
}

// Watch subscribes fn to every store change: pushes, dismissals, drag
// updates, and mode toggles. It returns a cancel function that removes
// the subscription. Batched mutations notify once.
func (s *Store) Watch(fn func()) func() {
	o := reactive.NewObserverFunc(fn)
	s.records.Subscribe(o)
	s.interactions.Subscribe(o)
	s.expanded.Subscribe(o)

	return func() {
		s.records.Unsubscribe(o)
		s.interactions.Unsubscribe(o)
		s.expanded.Unsubscribe(o)
	}
}

func cloneInteractions(m map[ID]Interaction) map[ID]Interaction {
	next := make(map[ID]Interaction, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}
