package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/op/go-logging"
	"github.com/redis/go-redis/v9"
)

var log = logging.MustGetLogger("cache")

const defaultTTL = 5 * time.Minute

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (r *RedisCache) Get(ctx context.Context, key string) (*Preview, error) {
	data, err := r.client.Get(ctx, cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var preview Preview
	if err := json.Unmarshal(data, &preview); err != nil {
		return nil, fmt.Errorf("unmarshal preview failed: %w", err)
	}
	return &preview, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, preview *Preview) error {
	data, err := json.Marshal(preview)
	if err != nil {
		return fmt.Errorf("marshal preview failed: %w", err)
	}
	if err := r.client.Set(ctx, cacheKey(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, cacheKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Ping is used by the health endpoint.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Connect opens a redis client for addr. An empty addr yields a NullCache.
func Connect(ctx context.Context, addr, password string, db int, ttl time.Duration) (PreviewCache, *redis.Client) {
	if addr == "" {
		log.Info("REDIS_ADDR not set, previews are not cached")
		return NullCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warningf("redis at %s unreachable, previews are not cached: %v", addr, err)
		_ = client.Close()
		return NullCache{}, nil
	}
	log.Infof("preview cache connected to redis at %s", addr)
	return NewRedisCache(client, ttl), client
}

func cacheKey(key string) string {
	return fmt.Sprintf("preview:%s", key)
}
