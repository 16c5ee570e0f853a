package game

import (
	"math/rand"
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

const (
	MinPointCount = 3
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultMargin = 50
)

type Option func(*Game)

func WithProvider(provider geom.Provider) Option {
	return func(g *Game) {
		g.provider = provider
	}
}

func WithBounds(bounds geom.Rect) Option {
	return func(g *Game) {
		g.bounds = bounds
	}
}

// WithMargin keeps generated seeds this far from the bounds.
func WithMargin(margin float64) Option {
	return func(g *Game) {
		g.margin = margin
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithListener(listener Listener) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, listener)
	}
}

func defaultGame() *Game {
	return &Game{
		provider: geom.Voronoi{},
		bounds:   geom.NewRect(DefaultWidth, DefaultHeight),
		margin:   DefaultMargin,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
