package pprof

import (
	"net"
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Register mounts the pprof handlers under /debug/pprof.
func Register(router *gin.Engine) {
	pprof.Register(router)
}

// Start serves pprof on addr in the background and returns the address it
// listens on, which differs from addr when addr asks for port 0.
func Start(addr string) (string, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	Register(router)

	go func() {
		if err := http.Serve(l, router); err != nil {
			logx.Errorf("pprof server on %s: %v", l.Addr(), err)
		}
	}()

	return l.Addr().String(), nil
}
