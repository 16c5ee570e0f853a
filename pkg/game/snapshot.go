package game

import (
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

type EdgeView struct {
	ID string `json:"id"`
	geom.Segment
	ClaimedBy chess.Turn `json:"claimedBy"`
}

// Snapshot is everything a presentation layer needs to redraw the game.
type Snapshot struct {
	Phase         Phase        `json:"phase"`
	CurrentPlayer chess.Turn   `json:"currentPlayer"`
	Step          int          `json:"step"`
	Scores        Scores       `json:"scores"`
	Polygons      Scores       `json:"polygons"`
	Winner        chess.Turn   `json:"winner"`
	Message       string       `json:"message,omitempty"`
	Bounds        geom.Rect    `json:"bounds"`
	Points        []geom.Point `json:"points"`
	Edges         []EdgeView   `json:"edges"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:         g.phase,
		CurrentPlayer: g.current,
		Step:          g.step,
		Scores:        g.scores,
		Polygons:      g.polygons,
		Bounds:        g.bounds,
	}

	if winner, message, ok := g.Result(); ok {
		s.Winner = winner
		s.Message = message
	}

	if g.board == nil {
		return s
	}

	s.Points = g.board.Points
	for _, e := range g.board.AllEdges() {
		s.Edges = append(s.Edges, EdgeView{
			ID:        e.ID.String(),
			Segment:   e.Segment,
			ClaimedBy: e.ClaimedBy,
		})
	}
	return s
}
