package store

import (
	"context"
	"sync"
	"time"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	sessions map[string]*models.GameSession
	mu       sync.RWMutex
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.GameSession),
	}
}

// Get retrieves a copy of a session by id
func (s *MemoryStore) Get(_ context.Context, id string) (*models.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

// Insert stores a new session, failing if the id is taken
func (s *MemoryStore) Insert(_ context.Context, session *models.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; exists {
		return ErrAlreadyExists
	}
	stored := stamped(session, 1, nowMs())
	s.sessions[session.ID] = stored
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

// Upsert writes the whole session if nobody else wrote it since it was read
func (s *MemoryStore) Upsert(_ context.Context, session *models.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := int64(1)
	if existing, exists := s.sessions[session.ID]; exists {
		if existing.Version != session.Version {
			return ErrVersionConflict
		}
		next = existing.Version + 1
	}
	stored := stamped(session, next, nowMs())
	s.sessions[session.ID] = stored
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

// Exists checks if a session id is taken
func (s *MemoryStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.sessions[id]
	return exists
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error { return nil }

func nowMs() int64 { return time.Now().UTC().UnixMilli() }

func msToTime(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
