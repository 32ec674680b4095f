package redisx

import (
	"context"
	"time"

	"stagepass/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles credential attempts per client key with a fixed
// window counter.
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{
		client: client,
		limit:  10,
		window: time.Minute,
	}
}

// Allow increments the counter for key and reports whether the attempt is
// within the window budget.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "login_attempts:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to count login attempts")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, errs.Wrap(err, "failed to set rate limit window")
		}
	}
	return count <= l.limit, nil
}
