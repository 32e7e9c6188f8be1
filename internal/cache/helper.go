package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long cached entries live before expiring.
const DefaultTTL = 5 * time.Minute

// PostKey returns the cache key for a single post's detail view as seen by
// the given viewer. Anonymous viewers share the empty-viewer key.
func PostKey(postID, viewerID string) string {
	return fmt.Sprintf("post:%s:%s", postID, viewerID)
}

// GetJSON fetches key and unmarshals it into dest. Returns false on a miss
// or when caching is unavailable.
func GetJSON(ctx context.Context, key string, dest any) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	return true
}

// SetJSON marshals value and stores it at key with the given TTL. Failures
// are swallowed; the cache is best-effort.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// Aside implements the cache-aside pattern: return the cached value when
// present, otherwise load it, cache it, and return it.
func Aside[T any](ctx context.Context, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	value, err := load()
	if err != nil {
		return value, err
	}
	SetJSON(ctx, key, value, ttl)
	return value, nil
}

// InvalidatePost drops every cached view of the given post.
func InvalidatePost(ctx context.Context, postID string) {
	DeletePattern(ctx, fmt.Sprintf("post:%s:*", postID))
}

// DeletePattern removes all keys matching the given glob pattern.
func DeletePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return
	}
	if len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}
