package main

import (
	"flag"
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/model"
)

var (
	GamesConf  = flag.Int("Games", 50, "Games")
	PointsConf = flag.Int("Points", 30, "Points")
	SeedConf   = flag.Int64("Seed", 0, "Seed, 0 picks one from the clock")

	AI1 = model.On
	AI2 = model.On
)

func init() {
	flag.Var(&AI1, "AI1", "AI1")
	flag.Var(&AI2, "AI2", "AI2")
}

type Options struct {
	Games  int
	Points int
	Seed   int64
	AI1    model.Config
	AI2    model.Config
}

func initConfig() Options {
	flag.Parse()

	o := Options{
		Games:  max(*GamesConf, 1),
		Points: max(*PointsConf, game.MinPointCount),
		Seed:   *SeedConf,
		AI1:    AI1,
		AI2:    AI2,
	}

	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}

	return o
}
