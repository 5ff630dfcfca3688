package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const retryInterval = time.Second / 5

type RedisLock struct {
	*redis.RedisLock
	wait time.Duration
}

// NewLock returns a lock on key that expires after expire seconds if the
// holder never releases it.
func NewLock(rds *redis.Redis, key string, expire int) *RedisLock {
	l := redis.NewRedisLock(rds, key)
	if expire > 0 {
		l.SetExpire(expire)
	}
	return &RedisLock{RedisLock: l}
}

// SetWait bounds how long Do waits to acquire the lock. Zero waits until
// ctx is done.
func (l *RedisLock) SetWait(wait time.Duration) {
	l.wait = wait
}

// Do runs f while holding the lock. The lock is released even if f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) error {
	if err := l.acquire(ctx); err != nil {
		return err
	}

	err := f()
	if unlockErr := l.UnLock(ctx); err == nil {
		err = unlockErr
	}

	return err
}

func (l *RedisLock) acquire(ctx context.Context) error {
	if l.wait <= 0 {
		return l.Lock(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()
	return l.Lock(ctx)
}

// Lock waits for the lock until ctx is done.
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
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// UnLock releases the lock. A lock that already expired counts as released.
func (l *RedisLock) UnLock(ctx context.Context) error {
	_, err := l.ReleaseCtx(ctx)
	return err
}
