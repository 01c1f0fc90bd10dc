package services

import (
	"context"
	"sync"
)

// SessionManager hands out one CycleStore per authenticated user, loading the
// persisted collection the first time a user is seen in this process.
type SessionManager struct {
	mu     sync.Mutex
	repo   CycleRepository
	stores map[string]*CycleStore
}

func NewSessionManager(repo CycleRepository) *SessionManager {
	return &SessionManager{
		repo:   repo,
		stores: make(map[string]*CycleStore),
	}
}

// Store returns the engine for userID, creating and loading it on first use.
// A load failure surfaces the error; the engine still exists and treats the
// collection as empty for the session.
func (m *SessionManager) Store(ctx context.Context, userID string) (*CycleStore, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	m.mu.Lock()
	store, ok := m.stores[userID]
	if !ok {
		store = NewCycleStore(m.repo, userID)
		m.stores[userID] = store
	}
	m.mu.Unlock()

	if !ok {
		if _, err := store.Load(ctx); err != nil {
			return store, err
		}
	}
	return store, nil
}

// Drop forgets a user's session, e.g. after account deletion.
func (m *SessionManager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, userID)
}
