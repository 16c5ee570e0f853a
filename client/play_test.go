package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/model"
)

func TestPlayGame(t *testing.T) {
	tests := []struct {
		name     string
		ai1, ai2 model.Config
	}{
		{"both greedy", model.On, model.On},
		{"greedy first", model.On, model.Off},
		{"both random", model.Off, model.Off},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options{Games: 1, Points: 10, AI1: tt.ai1, AI2: tt.ai2}
			winner, scores, message, err := PlayGame(o, rand.New(rand.NewSource(3)))
			require.NoError(t, err)
			assert.NotEmpty(t, message)

			switch {
			case scores.Player1 > scores.Player2:
				assert.Equal(t, chess.Player1, winner)
			case scores.Player2 > scores.Player1:
				assert.Equal(t, chess.Player2, winner)
			default:
				assert.Equal(t, chess.NoPlayer, winner)
			}
		})
	}
}

func TestPlayGame_Deterministic(t *testing.T) {
	o := Options{Games: 1, Points: 12, AI1: model.On, AI2: model.Off}

	_, first, _, err := PlayGame(o, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	_, second, _, err := PlayGame(o, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTally(t *testing.T) {
	var tally Tally
	tally.Add(chess.Player1, game.Scores{Player1: 9, Player2: 4})
	tally.Add(chess.NoPlayer, game.Scores{Player1: 5, Player2: 5})
	tally.Add(chess.Player2, game.Scores{Player1: 2, Player2: 8})

	assert.Equal(t, 3, tally.Games())
	assert.Equal(t, 1, tally.Player1Wins)
	assert.Equal(t, 1, tally.Player2Wins)
	assert.Equal(t, 1, tally.Draws)
	assert.Equal(t, 16, tally.Player1)
	assert.Equal(t, 17, tally.Player2)
}

func TestPickEdge(t *testing.T) {
	g := game.New(game.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, g.NewBoard(6))

	rng := rand.New(rand.NewSource(1))
	for _, ai := range []model.Config{model.On, model.Off} {
		e, ok := pickEdge(g.Board(), chess.Player1, ai, rng)
		require.True(t, ok)
		owner := g.Board().Owner(e)
		assert.Equal(t, chess.NoPlayer, owner)
	}
}
