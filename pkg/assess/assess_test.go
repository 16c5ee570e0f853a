package assess_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/voronoi-edges/pkg/assess"
	"github.com/HuXin0817/voronoi-edges/pkg/cycle"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

func squareBoard() *chess.Board {
	return chess.NewBoard(nil, geom.Cell{Segments: []geom.Segment{
		geom.NewSegment(0, 0, 10, 0),
		geom.NewSegment(10, 0, 10, 10),
		geom.NewSegment(10, 10, 0, 10),
	}})
}

func id(t *testing.T, s string) chess.EdgeID {
	t.Helper()
	e, err := chess.ParseEdgeID(s)
	require.NoError(t, err)
	return e
}

// TestAssess_Square scores a fully owned square at four points per edge.
func TestAssess_Square(t *testing.T) {
	b := squareBoard()
	for _, e := range b.FreeEdges() {
		require.NoError(t, b.Claim(e, chess.Player1))
	}

	r := assess.Assess(b, chess.Player1)
	assert.Equal(t, 16, r.Score)
	assert.Equal(t, 1, r.Polygons())
	assert.Equal(t, 0, assess.Assess(b, chess.Player2).Score)
}

// TestScore_DisjointEdges gives one point per edge without loops.
func TestScore_DisjointEdges(t *testing.T) {
	owned := []chess.EdgeID{id(t, "0,0-1,0"), id(t, "5,5-6,5"), id(t, "9,8-9,9")}
	cycles := cycle.Detect(owned)
	assert.Empty(t, cycles)
	assert.Equal(t, 3, assess.Score(owned, cycles))
}

// TestScore_LoopWithTail mixes loop edges and loose edges.
func TestScore_LoopWithTail(t *testing.T) {
	owned := []chess.EdgeID{id(t, "0,0-4,0"), id(t, "4,0-2,3"), id(t, "0,0-2,3"), id(t, "2,3-2,8"), id(t, "2,3-2,8")}
	assert.Equal(t, 3*4+1, assess.Score(owned, cycle.Detect(owned)))
}

// TestScore_UpperBound checks score <= 4 * claimed edges on random boards.
func TestScore_UpperBound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := geom.NewRect(800, 600)
	points := geom.RandomPoints(12, bounds, 50, rng)
	cells, err := geom.Voronoi{}.Partition(points, bounds)
	require.NoError(t, err)

	b := chess.NewBoard(points, cells...)
	player := chess.Player1
	for !b.Full() {
		e, ok := assess.RandFreeEdge(b, rng)
		require.True(t, ok)
		require.NoError(t, b.Claim(e, player))
		player = player.Next()

		for _, p := range []chess.Turn{chess.Player1, chess.Player2} {
			n := len(b.EdgesOf(p))
			s := assess.Assess(b, p).Score
			assert.GreaterOrEqual(t, s, n)
			assert.LessOrEqual(t, s, 4*n)
		}
	}
}

// TestBetterEdges prefers the edge that closes a loop.
func TestBetterEdges(t *testing.T) {
	b := squareBoard()
	free := b.FreeEdges()
	for _, e := range free[:3] {
		require.NoError(t, b.Claim(e, chess.Player1))
	}

	m := assess.Move{Board: b, Player: chess.Player1, Edge: free[3]}
	assert.True(t, m.ClosesLoop())
	assert.Equal(t, 13, m.Score())
	assert.Equal(t, []chess.EdgeID{free[3]}, assess.BetterEdges(b, chess.Player1))

	m.Player = chess.Player2
	assert.False(t, m.ClosesLoop())
	assert.Equal(t, 1, m.Score())

	e, ok := assess.RandEdgeInBetterEdges(b, chess.Player1, rand.New(rand.NewSource(1)))
	assert.True(t, ok)
	assert.Equal(t, free[3], e)

	require.NoError(t, b.Claim(free[3], chess.Player2))
	assert.Empty(t, assess.BetterEdges(b, chess.Player1))
	_, ok = assess.RandFreeEdge(b, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}
