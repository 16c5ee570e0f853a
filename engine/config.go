package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Log   logx.LogConf
	Redis redis.RedisConf
	Mongo struct {
		Url          string
		DataBaseName string
	}
	PushSeconds int    `json:",default=1"`
	DebugAddr   string `json:",optional"`
}

var configFile = flag.String("f", "etc/engine.yaml", "the config file")

func initConfig() (c Config) {
	flag.Parse()
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	return
}
