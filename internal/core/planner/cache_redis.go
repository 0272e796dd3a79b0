// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements [Cache] with JSON values and a fixed TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed package cache.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

/*
Get loads a cached package.

Returns:
  - *CachedPackage: The stored package, nil on miss
  - bool: Whether the key was present
  - error: Connectivity or decoding errors
*/
func (cache *RedisCache) Get(context context.Context, key string) (*CachedPackage, bool, error) {
	raw, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_package_get_failed: %w", err)
	}

	var cached CachedPackage
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, fmt.Errorf("redis_package_decode_failed: %w", err)
	}
	return &cached, true, nil
}

// Set stores a package under key for the configured TTL.
func (cache *RedisCache) Set(context context.Context, key string, value *CachedPackage) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis_package_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, key, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_package_set_failed: %w", err)
	}
	return nil
}
