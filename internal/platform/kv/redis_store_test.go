package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, "test"), mr
}

func TestRedisStore_SetAndGet(t *testing.T) {
	t.Parallel()

	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "portfolios", []byte(`{"a":1}`)))

	data, err := store.Get(ctx, "portfolios")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)

	// Keys are namespaced under the prefix
	assert.True(t, mr.Exists("test:portfolios"))
}

func TestRedisStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_Remove(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "portfolios", []byte("x")))
	require.NoError(t, store.Remove(ctx, "portfolios"))

	_, err := store.Get(ctx, "portfolios")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Removing a missing key is not an error
	assert.NoError(t, store.Remove(ctx, "portfolios"))
}

func TestRedisStore_RemoveAll(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1")))
	require.NoError(t, store.Set(ctx, "b", []byte("2")))
	require.NoError(t, store.Set(ctx, "c", []byte("3")))

	require.NoError(t, store.RemoveAll(ctx, "a", "b"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = store.Get(ctx, "c")
	assert.NoError(t, err)

	assert.NoError(t, store.RemoveAll(ctx))
}

func TestRedisStore_ListKeys(t *testing.T) {
	t.Parallel()

	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "portfolios", []byte("1")))
	require.NoError(t, store.Set(ctx, "properties:dynamic", []byte("2")))

	// Keys outside the namespace are invisible
	mr.Set("other:key", "x")

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"portfolios", "properties:dynamic"}, keys)
}
