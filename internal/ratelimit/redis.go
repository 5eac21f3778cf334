package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter backed by a shared Redis instance,
// so the limit holds across multiple application instances. Each window is a
// counter that expires when the window does.
type RedisLimiter struct {
	client   redis.Cmdable
	limit    int
	interval time.Duration
	prefix   string
}

func NewRedisLimiter(client redis.Cmdable, limit int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		limit:    limit,
		interval: interval,
		prefix:   "ratelimit:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.prefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.interval).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
