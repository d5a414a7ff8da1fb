package persistence

import (
	"context"
	"sync"
	"time"

	"repodash/internal/domain/dashboard"
)

// MemorySessionRepo implements dashboard.SessionRepo in process memory.
// Sessions hold live cancel functions, so they are never serialized.
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*dashboard.Session
}

// NewMemorySessionRepository creates an empty session store
func NewMemorySessionRepository() *MemorySessionRepo {
	return &MemorySessionRepo{
		sessions: make(map[string]*dashboard.Session),
	}
}

// Save stores a session (create or replace)
func (m *MemorySessionRepo) Save(ctx context.Context, session *dashboard.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID().String()] = session
	return nil
}

// FindByID retrieves a session
func (m *MemorySessionRepo) FindByID(ctx context.Context, id dashboard.SessionID) (*dashboard.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id.String()]
	if !ok {
		return nil, dashboard.ErrSessionNotFound(id.String())
	}
	return session, nil
}

// Delete removes a session
func (m *MemorySessionRepo) Delete(ctx context.Context, id dashboard.SessionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id.String()]; !ok {
		return dashboard.ErrSessionNotFound(id.String())
	}
	delete(m.sessions, id.String())
	return nil
}

// DeleteIdle removes sessions untouched since cutoff. Sessions with a fetch in flight are kept.
func (m *MemorySessionRepo) DeleteIdle(ctx context.Context, cutoff time.Time) ([]*dashboard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []*dashboard.Session
	for key, session := range m.sessions {
		if session.Loading() || !session.TouchedAt().Before(cutoff) {
			continue
		}
		delete(m.sessions, key)
		removed = append(removed, session)
	}
	return removed, nil
}

// Count returns the number of live sessions
func (m *MemorySessionRepo) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}
