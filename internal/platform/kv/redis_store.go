package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed blob store. Keys are namespaced with a
// prefix so several stores can share one Redis database.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new RedisStore instance.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "estate"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// storeKey returns the namespaced Redis key for a logical key.
func (s *RedisStore) storeKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

// Get returns the blob stored under key, or ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.storeKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set stores the blob under key, replacing any previous value.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.storeKey(key), value, 0).Err()
}

// Remove deletes the blob stored under key. Missing keys are not an error.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.storeKey(key)).Err()
}

// RemoveAll deletes every listed key. Missing keys are not an error.
func (s *RedisStore) RemoveAll(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	namespaced := make([]string, 0, len(keys))
	for _, k := range keys {
		namespaced = append(namespaced, s.storeKey(k))
	}
	return s.client.Del(ctx, namespaced...).Err()
}

// ListKeys returns every logical key in the store's namespace using SCAN.
func (s *RedisStore) ListKeys(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)
	pattern := s.storeKey("*")
	for {
		keys, cur, err := s.client.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			out = append(out, k[len(s.prefix)+1:])
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return out, nil
}
