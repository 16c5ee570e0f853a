package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message/moverecord"
	"github.com/HuXin0817/voronoi-edges/pkg/pprof"
)

func main() {
	c := initConfig()
	pprof.Start(c.DebugAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := NewEngine(
		redis.MustNewRedis(c.Redis),
		moverecord.NewRecorder(c.Mongo.Url, c.Mongo.DataBaseName),
		time.Duration(c.PushSeconds)*time.Second,
	)

	if err := e.Run(ctx); err != nil {
		logx.Must(err)
	}
	logx.Info("engine stopped")
}
