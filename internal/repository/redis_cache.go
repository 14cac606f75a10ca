package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// reportCacheTTL bounds how long a memoized report survives. Keys are
// content-addressed, so expiry is the only cleanup needed.
const reportCacheTTL = time.Hour

// RedisCache is a CacheRepository backed by a Redis instance.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache creates a RedisCache connected to the given address.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, reportCacheTTL).Err()
}
