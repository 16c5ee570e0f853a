package chess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

func vertex(t *testing.T, x, y float64) chess.Vertex {
	t.Helper()
	v, ok := chess.NewVertex(x, y)
	require.True(t, ok)
	return v
}

// TestNewVertex_Rounding checks that near-duplicate coordinates collapse.
func TestNewVertex_Rounding(t *testing.T) {
	a := vertex(t, 123.454999, 10.0)
	b := vertex(t, 123.45000001, 9.999999)
	assert.Equal(t, a, b)
	assert.Equal(t, "123.45,10", a.String())

	// Half rounds up, as Math.round does.
	assert.Equal(t, int64(13), vertex(t, 0.125, 0).X)
	assert.Equal(t, int64(-12), vertex(t, -0.125, 0).X)
}

// TestNewVertex_Unusable rejects non-finite input.
func TestNewVertex_Unusable(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e20} {
		_, ok := chess.NewVertex(f, 1)
		assert.False(t, ok, "x=%v", f)
		_, ok = chess.NewVertex(1, f)
		assert.False(t, ok, "y=%v", f)
	}
}

// TestNewEdgeID_Symmetric verifies edgeId(a,b) == edgeId(b,a).
func TestNewEdgeID_Symmetric(t *testing.T) {
	pairs := [][2]chess.Vertex{
		{vertex(t, 1, 2), vertex(t, 3, 4)},
		{vertex(t, 5, 9), vertex(t, 5, 1)},
		{vertex(t, 100, 0), vertex(t, 99.99, 500)},
	}
	for _, p := range pairs {
		assert.Equal(t, chess.NewEdgeID(p[0], p[1]), chess.NewEdgeID(p[1], p[0]))
		id := chess.NewEdgeID(p[0], p[1])
		assert.True(t, id.A.Less(id.B))
	}
}

// TestEdgeID_String uses x-then-y order of the rounded endpoints.
func TestEdgeID_String(t *testing.T) {
	id := chess.NewEdgeID(vertex(t, 100, 5), vertex(t, 99.5, 7.125))
	assert.Equal(t, "99.5,7.13-100,5", id.String())

	id = chess.NewEdgeID(vertex(t, 3, 8), vertex(t, 3, 2))
	assert.Equal(t, "3,2-3,8", id.String())
}

// TestParseEdgeID round-trips text ids, including negative coordinates.
func TestParseEdgeID(t *testing.T) {
	for _, s := range []string{"1,2-3,4", "99.5,7.13-100,5", "-1.5,-2-3,-4.25", "0,0-0,0.01"} {
		id, err := chess.ParseEdgeID(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, id.String())
	}

	// Reversed text still lands on the canonical id.
	id, err := chess.ParseEdgeID("3,4-1,2")
	require.NoError(t, err)
	assert.Equal(t, "1,2-3,4", id.String())

	for _, s := range []string{"", "1,2", "1,2-3", "a,b-c,d", "1,2-1,2", "1,2-3,4,5"} {
		_, err := chess.ParseEdgeID(s)
		assert.ErrorIs(t, err, chess.ErrInvalidEdgeID, s)
	}
}

// TestSegmentEdgeID rejects segments that collapse after rounding.
func TestSegmentEdgeID(t *testing.T) {
	_, ok := chess.SegmentEdgeID(geom.NewSegment(1, 1, 1.001, 1.004))
	assert.False(t, ok)

	_, ok = chess.SegmentEdgeID(geom.NewSegment(math.NaN(), 1, 2, 2))
	assert.False(t, ok)

	a, ok := chess.SegmentEdgeID(geom.NewSegment(1, 1, 2, 2))
	require.True(t, ok)
	b, ok := chess.SegmentEdgeID(geom.NewSegment(2, 2, 1, 1))
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestEdgeID_TextMarshal(t *testing.T) {
	id := chess.NewEdgeID(vertex(t, 1, 2), vertex(t, 3, 4))
	text, err := id.MarshalText()
	require.NoError(t, err)

	var back chess.EdgeID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)
}
