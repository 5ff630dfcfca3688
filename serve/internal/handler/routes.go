package handler

import (
	"net/http"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/pprof"
	"github.com/HuXin0817/dab-engine/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewRouter(svcCtx *svc.ServiceContext) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), accessLog)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	v1 := router.Group("/v1")
	v1.POST("/move", MoveHandler(svcCtx))
	v1.POST("/legal", LegalHandler(svcCtx))

	if svcCtx.Config.Pprof {
		pprof.Register(router)
	}

	return router
}

func accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	logx.WithContext(c.Request.Context()).WithDuration(time.Since(start)).Infow("request",
		logx.Field("method", c.Request.Method),
		logx.Field("path", c.Request.URL.Path),
		logx.Field("status", c.Writer.Status()),
	)
}
