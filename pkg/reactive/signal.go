// Package reactive provides the signal primitives that back melba's
// stateful widgets. A Signal[T] holds a value and a subscriber list;
// observers subscribe explicitly and are notified when the value
// changes. There is no implicit dependency tracking: a component that
// wants updates calls Subscribe itself, usually once at mount.
package reactive

import (
	"reflect"
	"sync"
)

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T] so that all signal flavors share the
// same subscription and notification logic.
type signalBase struct {
	id uint64

	// subs are the observers subscribed to this signal.
	subs []Observer

	// subMu protects the subs slice.
	subMu sync.RWMutex
}

// subscribe adds an observer, deduplicating by ID so a double
// Subscribe never produces double notifications.
func (s *signalBase) subscribe(o Observer) {
	if o == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	oid := o.ID()
	for _, existing := range s.subs {
		if existing.ID() == oid {
			return
		}
	}

	s.subs = append(s.subs, o)
}

// unsubscribe removes an observer by ID.
func (s *signalBase) unsubscribe(o Observer) {
	if o == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	oid := o.ID()
	for i, existing := range s.subs {
		if existing.ID() == oid {
			// Swap with the last element; subscriber order is not observable.
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// notifySubscribers marks every subscriber dirty. Subscribers are
// copied out first so MarkDirty never runs under the lock, and a
// callback that subscribes or unsubscribes does not deadlock.
func (s *signalBase) notifySubscribers() {
	s.subMu.RLock()
	subs := make([]Observer, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		if !queuePending(sub) {
			sub.MarkDirty()
		}
	}
}

// Signal is a reactive value container. Set and Update notify
// subscribers only when the value actually changed, judged by the
// signal's equality function.
type Signal[T any] struct {
	base signalBase

	// value is the current signal value.
	value T

	// mu protects the value.
	mu sync.RWMutex

	// equal determines whether a write changed the value.
	// If nil, defaultEquals is used.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		base: signalBase{
			id: nextID(),
		},
		value: initial,
	}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the signal's value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Update atomically reads and updates the signal's value.
// The function receives the current value and returns the new one.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	oldValue := s.value
	newValue := fn(oldValue)
	changed := !s.equals(oldValue, newValue)
	if changed {
		s.value = newValue
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Subscribe registers an observer for change notifications.
// Subscribing the same observer twice is a no-op.
func (s *Signal[T]) Subscribe(o Observer) {
	s.base.subscribe(o)
}

// Unsubscribe removes an observer. Unknown observers are ignored.
func (s *Signal[T]) Unsubscribe(o Observer) {
	s.base.unsubscribe(o)
}

// WithEquals returns the signal configured with a custom equality
// function, for types where reflect.DeepEqual is too expensive or has
// the wrong semantics.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable types and reflect.DeepEqual for the rest.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		// Slices, maps, structs and friends.
		return reflect.DeepEqual(a, b)
	}
}
