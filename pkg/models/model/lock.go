package model

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetryInterval = time.Second / 5
	lockExpireSeconds = 10
)

type RedisLock struct {
	*redis.RedisLock
	name string
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
		name:      LockName,
	}
	l.SetExpire(lockExpireSeconds)
	return l
}

// Do runs f while holding the lock. The lock is released even when f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

// Lock retries until the lock is acquired or ctx is done.
func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("model: lock %s: %w", l.name, ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
}

// UnLock reports an error when the lock had already expired.
func (l *RedisLock) UnLock(ctx context.Context) error {
	release, err := l.ReleaseCtx(ctx)
	if err != nil {
		return err
	}

	if !release {
		return fmt.Errorf("model: lock %s expired before release", l.name)
	}

	return nil
}
