package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisClient(cfg *config.RedisConnect) (*redis.Client, error) {

	redisURL := cfg.GetDSN()
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.Username, cfg.Host, cfg.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

// NewRedisStore keeps values under "<namespace>:<key>" without expiry.
func NewRedisStore(client *redis.Client, namespace string) Store {
	return &redisStore{
		client:    client,
		namespace: namespace,
	}
}

func (r *redisStore) Get(ctx context.Context, key string, value any) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	fullKey := Key(r.namespace, key)

	data, err := r.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get key %s from redis: %w", fullKey, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", fullKey, err)
	}

	return true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrInvalidKey
	}

	fullKey := Key(r.namespace, key)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", fullKey, err)
	}

	if err := r.client.Set(ctx, fullKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", fullKey, err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	fullKey := Key(r.namespace, key)

	if err := r.client.Del(ctx, fullKey).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", fullKey, err)
	}

	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
