package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore counts requests in Redis so the limit holds across replicas.
// Redis errors fail open: a broken counter should not take the API down.
type RedisStore struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisStore(rdb *redis.Client, log *zap.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, log: log}
}

func (s *RedisStore) Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	redisKey := "rl:" + key

	count, err := s.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		s.log.Warn("rate limit check failed, allowing request", zap.Error(err))
		return Result{Allowed: true, Limit: limit, Remaining: limit - 1, ResetAt: time.Now().Add(window)}, nil
	}

	if count == 1 {
		s.rdb.Expire(ctx, redisKey, window)
	}

	ttl, err := s.rdb.TTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	resetAt := time.Now().Add(ttl)

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
