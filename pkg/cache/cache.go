package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// QueryCache is a read-through cache for aggregate views, keyed by query
// signature. Redis is the primary store; when Redis is unreachable a local
// in-process cache keeps reads warm for a single instance.
type QueryCache struct {
	rdb   *redis.Client
	local *gocache.Cache
}

func NewQueryCache(rdb *redis.Client) *QueryCache {
	return &QueryCache{
		rdb:   rdb,
		local: gocache.New(30*time.Second, time.Minute),
	}
}

// Get unmarshals the cached value into dest. Returns false on miss or any
// backend error; a broken cache must read like a miss.
func (c *QueryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			return json.Unmarshal(data, dest) == nil
		}
	}

	if raw, found := c.local.Get(key); found {
		data, ok := raw.([]byte)
		if ok {
			return json.Unmarshal(data, dest) == nil
		}
	}
	return false
}

// Set stores value under key with the given TTL in both tiers. Errors are
// swallowed: caching is best-effort.
func (c *QueryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.local.Set(key, data, ttl)
	if c.rdb != nil {
		c.rdb.Set(ctx, key, data, ttl)
	}
}

// InvalidatePrefix drops every entry whose key starts with prefix. Failures
// return an error for logging but must never fail the triggering mutation.
func (c *QueryCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	for key := range c.local.Items() {
		if strings.HasPrefix(key, prefix) {
			c.local.Delete(key)
		}
	}

	if c.rdb == nil {
		return nil
	}

	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
