package demo

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/melba-ui/melba/pkg/toast"
	"github.com/melba-ui/melba/pkg/vdom"
)

// Manager tracks sessions between page render and socket teardown.
// A session is pending from the moment its page is served until the
// client opens the WebSocket; pending sessions past the TTL are
// purged so crawlers and abandoned tabs do not accumulate.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl    time.Duration
	done   chan struct{}
	once   sync.Once
	logger *slog.Logger
}

// NewManager creates a session manager with the given pending TTL.
func NewManager(ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Create builds a new session with its own store and registers it.
func (m *Manager) Create(cfg *Config) *Session {
	store := toast.NewStore()
	id := uuid.NewString()
	sess := newSession(id, store, func() *vdom.VNode { return Body(store, cfg) }, m.logger)
	sess.onClose = func() { m.remove(id) }

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	return sess
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Len returns the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// StartPurge launches the background sweep of expired pending
// sessions.
func (m *Manager) StartPurge(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := m.purge(time.Now()); n > 0 {
					m.logger.Debug("purged pending sessions", "count", n)
				}
			case <-m.done:
				return
			}
		}
	}()
}

// purge removes pending sessions older than the TTL and returns how
// many were dropped. Attached sessions are left alone; their read
// loops own teardown.
func (m *Manager) purge(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, sess := range m.sessions {
		if sess.Attached() {
			continue
		}
		if now.Sub(sess.CreatedAt) > m.ttl {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Shutdown stops the purge loop and closes every session.
func (m *Manager) Shutdown() {
	m.once.Do(func() { close(m.done) })

	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		// onClose would re-lock to remove; the map is already clear.
		sess.onClose = nil
		sess.Close()
	}
}
