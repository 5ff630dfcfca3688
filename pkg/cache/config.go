package cache

import "github.com/zeromicro/go-zero/core/stores/redis"

const (
	ModeNone   = "none"
	ModeMemory = "memory"
	ModeRedis  = "redis"
)

// Conf configures the decision cache. Expire and LockWait are in seconds;
// LockWait bounds how long a redis miss waits on another process searching
// the same position.
type Conf struct {
	Mode     string          `json:",default=memory,options=none|memory|redis"`
	Expire   int             `json:",default=600"`
	Limit    int             `json:",default=4096"`
	LockWait int             `json:",default=5"`
	Redis    redis.RedisConf `json:",optional"`
}
