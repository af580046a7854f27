package lock

import (
	"context"
	"time"

	"stadium-scheduler/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Locker grants a key to one holder until the TTL lapses or the holder releases it.
type Locker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Deletes the key only while it still names this owner.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLock struct {
	redis *redis.Client
	owner string
}

func NewRedisLock(rdb *redis.Client, owner string) *RedisLock {
	return &RedisLock{redis: rdb, owner: owner}
}

func (l *RedisLock) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.redis.SetNX(ctx, key, l.owner, ttl).Result()
	if err != nil {
		return false, errs.Wrapf(err, "failed to acquire lock %s", key)
	}
	return ok, nil
}

func (l *RedisLock) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, l.redis, []string{key}, l.owner).Err(); err != nil {
		return errs.Wrapf(err, "failed to release lock %s", key)
	}
	return nil
}
