package assess

import (
	"github.com/HuXin0817/voronoi-edges/pkg/cycle"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
)

// Move is a free edge considered for a player.
type Move struct {
	Board  *chess.Board
	Player chess.Turn
	Edge   chess.EdgeID
}

// Score is the gain of the move: the player's score with the edge minus the
// score without it.
func (m Move) Score() int {
	owned := m.Board.EdgesOf(m.Player)
	before := Score(owned, cycle.Detect(owned))

	owned = append(owned, m.Edge)
	return Score(owned, cycle.Detect(owned)) - before
}

// ClosesLoop reports whether the edge touches the player's edges at both
// ends, the only way a single claim can complete a loop.
func (m Move) ClosesLoop() bool {
	var atA, atB bool
	for _, e := range m.Board.EdgesOf(m.Player) {
		atA = atA || e.Has(m.Edge.A)
		atB = atB || e.Has(m.Edge.B)
	}
	return atA && atB
}
