package svc

import (
	"github.com/HuXin0817/dab-engine/pkg/assess"
	"github.com/HuXin0817/dab-engine/pkg/cache"
	"github.com/HuXin0817/dab-engine/pkg/env"
	"github.com/HuXin0817/dab-engine/serve/internal/config"
)

type ServiceContext struct {
	Config config.Config
	Cache  assess.Cache
}

func NewServiceContext(c config.Config) (*ServiceContext, error) {
	c.Cache.Redis.Pass = env.Or(c.Cache.Redis.Pass, env.RedisPassWord)

	decisions, err := cache.New(c.Cache)
	if err != nil {
		return nil, err
	}

	return &ServiceContext{
		Config: c,
		Cache:  decisions,
	}, nil
}

// Engine returns an engine searching depth plies through the shared cache.
func (s *ServiceContext) Engine(depth int, options ...assess.Option) *assess.Engine {
	options = append(options, assess.WithDepth(depth))
	if s.Cache != nil {
		options = append(options, assess.WithCache(s.Cache))
	}
	return assess.NewEngine(options...)
}
