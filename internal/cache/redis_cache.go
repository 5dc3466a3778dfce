package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client     *redis.Client
	namespace  string
	defaultTTL time.Duration
}

// NewRedisCache stores entries under "<namespace>:cache:<key>" so they never
// collide with the persisted cart and history keys.
func NewRedisCache(client *redis.Client, namespace string, defaultTTL time.Duration) Cache {
	return &redisCache{
		client:     client,
		namespace:  namespace,
		defaultTTL: defaultTTL,
	}
}

func (r *redisCache) key(key string) string {
	if r.namespace == "" {
		return "cache:" + key
	}
	return r.namespace + ":cache:" + key
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	return nil
}

// Close leaves the client open; it is shared with the redis store.
func (r *redisCache) Close() error {
	return nil
}
