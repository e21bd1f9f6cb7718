// Package kv provides string-keyed JSON-blob storage backends.
// Collections are always written as whole blobs; there are no partial
// writes and no atomicity across keys.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// Store is the blob-store contract shared by the Redis and in-process
// backends. Feature adapters declare the narrow slices they consume; this
// union exists for wiring.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	RemoveAll(ctx context.Context, keys ...string) error
	ListKeys(ctx context.Context) ([]string, error)
}
