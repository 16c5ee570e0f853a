package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewRouter serves the runtime profiles under /debug/pprof.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Start serves the profiler on addr in the background. An empty addr keeps
// it off.
func Start(addr string) {
	if addr == "" {
		return
	}

	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := NewRouter().Run(addr); err != nil {
			logx.Errorf("pprof: %v", err)
		}
	}()
}
