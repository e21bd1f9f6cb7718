// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"github.com/redis/go-redis/v9"

	"estate_backend/internal/feature/auth/usecase"
	"estate_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to process memory.
func NewSessionRepository(rdb *redis.Client) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return session.NewSessionMemory()
}
