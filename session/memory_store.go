// session/memory_store.go
package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. It backs tests and redis-less runs;
// entries live for the lifetime of the process only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	pending  map[string]PendingLogin
}

var _ Store = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		pending:  make(map[string]PendingLogin),
	}
}

func (m *MemoryStore) SaveSession(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) GetSession(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MemoryStore) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) SavePending(ctx context.Context, p *PendingLogin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[p.Token] = *p
	return nil
}

func (m *MemoryStore) GetPending(ctx context.Context, token string) (*PendingLogin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pending[token]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryStore) DeletePending(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, token)
	return nil
}
