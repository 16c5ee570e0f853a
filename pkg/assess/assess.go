package assess

import (
	"github.com/HuXin0817/voronoi-edges/pkg/cycle"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
)

const (
	// EdgeScore is earned by every claimed edge.
	EdgeScore = 1
	// PolygonEdgeScore is earned instead by an edge lying on a closed loop.
	PolygonEdgeScore = 4
)

// Score counts owned edges off any cycle once and edges on a cycle four
// times. Polygon edges are counted as a set, so an edge shared by two loops
// still scores once.
func Score(owned []chess.EdgeID, cycles []cycle.Cycle) (score int) {
	inPolygons := cycle.EdgeSet(cycles)
	for _, e := range dedupe(owned) {
		if _, c := inPolygons[e]; !c {
			score += EdgeScore
		}
	}
	return score + len(inPolygons)*PolygonEdgeScore
}

func dedupe(edges []chess.EdgeID) (out []chess.EdgeID) {
	seen := make(map[chess.EdgeID]struct{}, len(edges))
	for _, e := range edges {
		if _, c := seen[e]; c {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return
}

// Result is a player's score recomputed from the board.
type Result struct {
	Score  int
	Cycles []cycle.Cycle
}

// Polygons counts distinct loops regardless of orientation.
func (r Result) Polygons() int {
	return len(cycle.Polygons(r.Cycles))
}

func Assess(b *chess.Board, player chess.Turn) Result {
	owned := b.EdgesOf(player)
	cycles := cycle.Detect(owned)
	return Result{
		Score:  Score(owned, cycles),
		Cycles: cycles,
	}
}
