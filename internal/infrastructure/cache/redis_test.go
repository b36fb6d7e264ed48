package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	preview := &Preview{JobID: 7, Lines: []string{"ФИСКАЛЕН БОН", "Тотал 12.00 лв"}}
	require.NoError(t, cache.Set(ctx, "7:2024-05-01T10:00:00+00:00", preview))

	assert.True(t, mr.Exists("preview:7:2024-05-01T10:00:00+00:00"))
	assert.Equal(t, time.Minute, mr.TTL("preview:7:2024-05-01T10:00:00+00:00"))

	got, err := cache.Get(ctx, "7:2024-05-01T10:00:00+00:00")
	require.NoError(t, err)
	assert.Equal(t, preview, got)
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	got, err := cache.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("preview:broken", `{"job_id": 1, "lines": [`))

	_, err := cache.Get(context.Background(), "broken")
	require.ErrorContains(t, err, "unmarshal preview failed")
}

func TestRedisCache_Expiry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "1", &Preview{JobID: 1}))
	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	data, _ := json.Marshal(&Preview{JobID: 3})
	require.NoError(t, mr.Set("preview:3", string(data)))

	require.NoError(t, cache.Delete(ctx, "3"))
	assert.False(t, mr.Exists("preview:3"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, mr := setupTestRedis(t)
	mr.Close()

	_, err := cache.Get(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestConnect_EmptyAddr(t *testing.T) {
	c, client := Connect(context.Background(), "", "", 0, time.Minute)
	assert.IsType(t, NullCache{}, c)
	assert.Nil(t, client)
}

func TestNullCache(t *testing.T) {
	var c PreviewCache = NullCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "1", &Preview{JobID: 1}))
	_, err := c.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "1"))
}
