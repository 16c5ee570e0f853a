package assess

import (
	"math/rand"

	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
)

// BetterEdges returns the free edges with the largest immediate gain for
// player, in board order. Edges that cannot close a loop are worth exactly
// EdgeScore and are not searched.
func BetterEdges(b *chess.Board, player chess.Turn) []chess.EdgeID {
	ScoreCount := make(map[int][]chess.EdgeID)
	best := 0
	for _, e := range b.FreeEdges() {
		m := Move{Board: b, Player: player, Edge: e}

		score := EdgeScore
		if m.ClosesLoop() {
			score = m.Score()
		}

		ScoreCount[score] = append(ScoreCount[score], e)
		best = max(best, score)
	}

	return ScoreCount[best]
}

func RandEdgeInBetterEdges(b *chess.Board, player chess.Turn, rng *rand.Rand) (chess.EdgeID, bool) {
	edges := BetterEdges(b, player)
	if len(edges) == 0 {
		return chess.EdgeID{}, false
	}
	return edges[rng.Intn(len(edges))], true
}

func RandFreeEdge(b *chess.Board, rng *rand.Rand) (chess.EdgeID, bool) {
	edges := b.FreeEdges()
	if len(edges) == 0 {
		return chess.EdgeID{}, false
	}
	return edges[rng.Intn(len(edges))], true
}
