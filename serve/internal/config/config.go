package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Redis redis.RedisConf `json:",optional"`
	Game  struct {
		Width         float64 `json:",default=800"`
		Height        float64 `json:",default=600"`
		Margin        float64 `json:",default=50"`
		DefaultPoints int     `json:",default=20"`
		TurnSeconds   int     `json:",default=60"`
		IdleSeconds   int     `json:",default=1800"`
		MaxGames      int     `json:",default=1000"`
	}
	SnapshotSeconds int    `json:",default=120"`
	DebugAddr       string `json:",optional"`
}
