package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/voronoi-edges/pkg/pprof"
	"github.com/HuXin0817/voronoi-edges/serve/internal/config"
	"github.com/HuXin0817/voronoi-edges/serve/internal/handler"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	servePort  = flag.Int("p", 0, "the serve port, overrides the config file")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *servePort != 0 {
		c.Port = *servePort
	}

	pprof.Start(c.DebugAddr)

	ctx := svc.NewServiceContext(c)
	proc.AddShutdownListener(ctx.Stop)
	go ctx.Hub.MaintainGames(time.Minute)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	httpx.SetErrorHandlerCtx(handler.ErrorHandler)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
