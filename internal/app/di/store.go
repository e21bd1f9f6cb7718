package di

import (
	"github.com/redis/go-redis/v9"

	"estate_backend/internal/platform/kv"
)

// NewBlobStore creates the key-value blob store backing portfolios and the
// dynamic property overlay. If Redis is available, blobs persist across
// restarts; otherwise the service runs on an in-process store and starts
// from the bundled seed every boot.
func NewBlobStore(rdb *redis.Client) kv.Store {
	if rdb != nil {
		return kv.NewRedisStore(rdb, "estate")
	}
	return kv.NewMemoryStore()
}
