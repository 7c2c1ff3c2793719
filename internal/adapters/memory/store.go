// Package memory provides an in-memory SessionStore for tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/sxm/pkg/ports"
)

// Store implements ports.SessionStore with a mutex-guarded map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*ports.Snapshot
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*ports.Snapshot),
	}
}

var _ ports.SessionStore = (*Store)(nil)

// Save stores a copy of the snapshot.
func (s *Store) Save(_ context.Context, sessionID string, snap *ports.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snap
	s.sessions[sessionID] = &copied
	return nil
}

// Load returns a copy of the stored snapshot.
func (s *Store) Load(_ context.Context, sessionID string) (*ports.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.sessions[sessionID]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	copied := *snap
	return &copied, nil
}

// Delete removes the session.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
