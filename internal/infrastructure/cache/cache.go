// Package cache stores rendered job previews.
package cache

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

// Preview is a rendered job preview keyed by job id and job version.
type Preview struct {
	JobID int64    `json:"job_id"`
	Lines []string `json:"lines"`
}

// PreviewCache is implemented by RedisCache and NullCache.
type PreviewCache interface {
	Get(ctx context.Context, key string) (*Preview, error)
	Set(ctx context.Context, key string, preview *Preview) error
	Delete(ctx context.Context, key string) error
}

// NullCache never stores anything. It is used when no redis is configured.
type NullCache struct{}

func (NullCache) Get(context.Context, string) (*Preview, error) { return nil, ErrCacheMiss }
func (NullCache) Set(context.Context, string, *Preview) error   { return nil }
func (NullCache) Delete(context.Context, string) error          { return nil }
