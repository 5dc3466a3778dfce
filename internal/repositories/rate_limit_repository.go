package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/josumamgar-gif/App-Aqualan/internal/api/middleware"
	"github.com/josumamgar-gif/App-Aqualan/internal/config"
	"github.com/josumamgar-gif/App-Aqualan/internal/storage"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckSubmitRateLimit(ctx context.Context, client string) (bool, int, int, error)
}

type redisRateLimitRepository struct {
	client    *redis.Client
	cfg       config.RateLimit
	namespace string
	now       func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateLimit, namespace string) RateLimitRepository {
	return &redisRateLimitRepository{client: client, cfg: cfg, namespace: namespace, now: time.Now}
}

// CheckSubmitRateLimit records one submission attempt for client inside a
// sliding window. Returns isAllowed, attempts left, seconds to wait, error.
func (r *redisRateLimitRepository) CheckSubmitRateLimit(ctx context.Context, client string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := storage.Key(r.namespace, "submit_attempts:"+client)

	now := r.now()
	window := r.cfg.WindowSize
	windowStart := now.Add(-window).UnixNano()

	pipe := r.client.Pipeline()

	// drop attempts that fell out of the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// nanosecond members so two attempts in the same second both count
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})

	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(window.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldest := time.Unix(0, int64(scores[0].Score))
		retryAfter := max(int(oldest.Add(window).Sub(now).Seconds()+0.999), 1)

		logger.Warn("Rate limit exceeded", slog.String("client", client), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	logger.Debug("Rate limit check passed", slog.String("client", client), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}
