package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager scopes one Ledger per session. Carts are never shared
// across sessions; the map lock only guards the registry itself.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Ledger
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Ledger)}
}

// NewSessionID issues an opaque session identifier for a first-time
// visitor.
func (m *Manager) NewSessionID() string {
	return uuid.NewString()
}

// Ledger returns the session's cart, creating an empty one on first
// use.
func (m *Manager) Ledger(sessionID string) *Ledger {
	m.mu.RLock()
	l, ok := m.carts[sessionID]
	m.mu.RUnlock()
	if ok {
		return l
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.carts[sessionID]; ok {
		return l
	}
	l = NewLedger()
	m.carts[sessionID] = l
	return l
}

// Drop discards a session's cart. No-op for unknown sessions.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

func (m *Manager) Sessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.carts)
}
