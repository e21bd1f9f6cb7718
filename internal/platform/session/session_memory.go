package session

import (
	"context"
	"sync"
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/usecase"
)

// SessionMemory implements usecase.SessionRepository in process memory.
// It backs the service when Redis is unavailable; sessions are lost on
// restart, which only forces a re-login.
type SessionMemory struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

var _ usecase.SessionRepository = (*SessionMemory)(nil)

// NewSessionMemory creates an empty SessionMemory.
func NewSessionMemory() *SessionMemory {
	return &SessionMemory{sessions: map[string]*entity.Session{}}
}

// Create stores a new session.
func (r *SessionMemory) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

// FindByID retrieves a session by its ID.
func (r *SessionMemory) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

// Revoke marks a session as revoked.
func (r *SessionMemory) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return usecase.ErrSessionNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}

// RevokeAllByUserID revokes all sessions for a user.
func (r *SessionMemory) RevokeAllByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, s := range r.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}
