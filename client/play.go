package main

import (
	"fmt"
	"math/rand"

	"github.com/HuXin0817/voronoi-edges/pkg/assess"
	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/model"
)

// Tally counts the outcomes of a series of games.
type Tally struct {
	Player1Wins int
	Player2Wins int
	Draws       int
	Player1     int
	Player2     int
}

func (t *Tally) Add(winner chess.Turn, scores game.Scores) {
	switch winner {
	case chess.Player1:
		t.Player1Wins++
	case chess.Player2:
		t.Player2Wins++
	default:
		t.Draws++
	}

	t.Player1 += scores.Player1
	t.Player2 += scores.Player2
}

func (t *Tally) Games() int {
	return t.Player1Wins + t.Player2Wins + t.Draws
}

// pickEdge chooses the next claim: an ON player takes one of the edges with
// the best immediate gain, an OFF player any free edge.
func pickEdge(b *chess.Board, player chess.Turn, ai model.Config, rng *rand.Rand) (chess.EdgeID, bool) {
	if ai {
		return assess.RandEdgeInBetterEdges(b, player, rng)
	}
	return assess.RandFreeEdge(b, rng)
}

// PlayGame plays one game on a fresh board until every edge is claimed.
func PlayGame(o Options, rng *rand.Rand) (winner chess.Turn, scores game.Scores, message string, err error) {
	g := game.New(game.WithRand(rng))
	if err = g.NewBoard(o.Points); err != nil {
		return chess.NoPlayer, game.Scores{}, "", err
	}

	for g.Phase() == game.Active {
		player := g.CurrentPlayer()
		ai := o.AI1
		if player == chess.Player2 {
			ai = o.AI2
		}

		edge, ok := pickEdge(g.Board(), player, ai, rng)
		if !ok {
			return chess.NoPlayer, g.Scores(), "", fmt.Errorf("client: no free edge at step %d", g.Step())
		}

		if _, err = g.Claim(edge); err != nil {
			return chess.NoPlayer, g.Scores(), "", err
		}
	}

	winner, message, _ = g.Result()
	return winner, g.Scores(), message, nil
}
