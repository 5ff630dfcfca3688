package main

import (
	"flag"
	"fmt"

	"github.com/HuXin0817/dab-engine/serve/internal/config"
	"github.com/HuXin0817/dab-engine/serve/internal/handler"
	"github.com/HuXin0817/dab-engine/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())
	logx.MustSetup(c.Log)
	defer logx.Close()

	ctx, err := svc.NewServiceContext(c)
	if err != nil {
		logx.Must(err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(ctx)

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	fmt.Printf("Starting %s at %s...\n", c.Name, addr)
	logx.Must(router.Run(addr))
}
