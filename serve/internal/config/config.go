package config

import (
	"github.com/HuXin0817/dab-engine/pkg/cache"
	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	Name         string `json:",default=dab-serve"`
	Host         string `json:",default=0.0.0.0"`
	Port         int    `json:",default=8000"`
	Log          logx.LogConf
	Depth        int  `json:",default=4,range=[1:8]"`
	MaxDepth     int  `json:",default=6,range=[1:10]"`
	MaxBoardSize int  `json:",default=6"`
	Pprof        bool `json:",optional"`
	Cache        cache.Conf
}
