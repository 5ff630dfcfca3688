package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/assess"
	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"github.com/HuXin0817/dab-engine/pkg/models/model"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const keyPrefix = "dab:decision:"

var ErrUnknownMode = errors.New("unknown cache mode")

// New builds the decision cache c describes. ModeNone yields a nil cache,
// which the engine treats as no caching.
func New(c Conf) (assess.Cache, error) {
	switch c.Mode {
	case ModeNone, "":
		return nil, nil
	case ModeMemory:
		m, err := NewMemory(time.Duration(c.Expire)*time.Second, c.Limit)
		if err != nil {
			return nil, err
		}
		return m, nil
	case ModeRedis:
		rds, err := redis.NewRedis(c.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedis(rds, c.Expire, time.Duration(c.LockWait)*time.Second), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
}

// Memory keeps decisions in process. Concurrent lookups of the same key
// share one search.
type Memory struct {
	c *collection.Cache
}

func NewMemory(expire time.Duration, limit int) (*Memory, error) {
	c, err := collection.NewCache(expire, collection.WithLimit(limit), collection.WithName("decision"))
	if err != nil {
		return nil, err
	}
	return &Memory{c: c}, nil
}

func (m *Memory) Take(key string, search func() assess.Decision) assess.Decision {
	v, err := m.c.Take(key, func() (any, error) {
		return search(), nil
	})
	if err != nil {
		return search()
	}
	return v.(assess.Decision)
}

// Redis shares decisions between processes. A miss is computed under a
// redis lock on the key so only one process searches a given position.
// A caller that cannot get the lock within lockWait searches on its own.
type Redis struct {
	rds      *redis.Redis
	expire   int
	lockWait time.Duration
}

func NewRedis(rds *redis.Redis, expire int, lockWait time.Duration) *Redis {
	return &Redis{rds: rds, expire: expire, lockWait: lockWait}
}

func (r *Redis) Take(key string, search func() assess.Decision) assess.Decision {
	ctx := context.Background()
	key = keyPrefix + key

	if d, ok := r.get(ctx, key); ok {
		return d
	}

	var (
		d    assess.Decision
		done bool
	)
	lock := model.NewLock(r.rds, key+":lock", max(r.expire, 1))
	lock.SetWait(r.lockWait)
	err := lock.Do(ctx, func() error {
		if cached, ok := r.get(ctx, key); ok {
			d, done = cached, true
			return nil
		}

		d, done = search(), true
		v := message.DecisionValue{Edge: d.Move, Value: d.Value, Found: d.Found}
		return r.rds.SetexCtx(ctx, key, v.String(), r.expire)
	})
	if err != nil {
		logx.Errorf("decision cache %s: %v", key, err)
		if !done {
			d = search()
		}
	}

	return d
}

func (r *Redis) get(ctx context.Context, key string) (assess.Decision, bool) {
	s, err := r.rds.GetCtx(ctx, key)
	if err != nil {
		logx.Errorf("decision cache %s: %v", key, err)
		return assess.Decision{}, false
	}
	if s == "" {
		return assess.Decision{}, false
	}

	v, err := message.NewDecisionValue(s)
	if err != nil {
		logx.Errorf("decision cache %s: %v", key, err)
		return assess.Decision{}, false
	}
	return assess.Decision{Move: v.Edge, Value: v.Value, Found: v.Found}, true
}
