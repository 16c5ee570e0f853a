package geom_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

// TestVoronoi_TwoSites splits the rectangle along the bisector and leaves
// each cell open.
func TestVoronoi_TwoSites(t *testing.T) {
	points := []geom.Point{{X: 25, Y: 50, ID: 0}, {X: 75, Y: 50, ID: 1}}
	cells, err := geom.Voronoi{}.Partition(points, geom.NewRect(100, 100))
	require.NoError(t, err)
	require.Len(t, cells, 2)

	assert.Equal(t, []geom.Segment{
		geom.NewSegment(0, 0, 50, 0),
		geom.NewSegment(50, 0, 50, 100),
		geom.NewSegment(50, 100, 0, 100),
	}, cells[0].Segments)
	assert.Equal(t, points[1], cells[1].Site)
	assert.Len(t, cells[1].Segments, 3)
}

// TestVoronoi_SingleSite returns the whole rectangle.
func TestVoronoi_SingleSite(t *testing.T) {
	cells, err := geom.Voronoi{}.Partition([]geom.Point{{X: 1, Y: 1}}, geom.NewRect(4, 3))
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Len(t, cells[0].Segments, 3)
}

// TestVoronoi_Errors covers empty bounds, missing points and strays.
func TestVoronoi_Errors(t *testing.T) {
	_, err := geom.Voronoi{}.Partition([]geom.Point{{X: 1, Y: 1}}, geom.Rect{})
	assert.ErrorIs(t, err, geom.ErrEmptyBounds)

	_, err = geom.Voronoi{}.Partition(nil, geom.NewRect(10, 10))
	assert.ErrorIs(t, err, geom.ErrNoPoints)

	_, err = geom.Voronoi{}.Partition([]geom.Point{{X: 11, Y: 1}}, geom.NewRect(10, 10))
	assert.Error(t, err)
}

// TestVoronoi_CellsContainSites checks every vertex of a random diagram lies
// inside the bounds and every cell is non-trivial.
func TestVoronoi_CellsContainSites(t *testing.T) {
	bounds := geom.NewRect(800, 600)
	points := geom.RandomPoints(40, bounds, 50, rand.New(rand.NewSource(7)))
	cells, err := geom.Voronoi{}.Partition(points, bounds)
	require.NoError(t, err)
	require.Len(t, cells, len(points))

	for _, c := range cells {
		assert.GreaterOrEqual(t, len(c.Segments), 2, "cell %d", c.Site.ID)
		for _, s := range c.Segments {
			assert.True(t, s.Finite())
			assert.True(t, bounds.Contains(clamp(s.X1), clamp(s.Y1)))
			assert.True(t, bounds.Contains(clamp(s.X2), clamp(s.Y2)))
		}
	}
}

func clamp(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}

func TestRandomPoints(t *testing.T) {
	bounds := geom.NewRect(800, 600)
	points := geom.RandomPoints(100, bounds, 50, rand.New(rand.NewSource(1)))
	require.Len(t, points, 100)
	for i, p := range points {
		assert.Equal(t, i, p.ID)
		assert.True(t, p.X >= 50 && p.X <= 750)
		assert.True(t, p.Y >= 50 && p.Y <= 550)
	}
}

func TestRect(t *testing.T) {
	r := geom.NewRect(10, 10)
	assert.False(t, r.Empty())
	assert.Equal(t, r, r.Inset(6))
	assert.Equal(t, geom.Rect{MinX: 1, MinY: 1, MaxX: 9, MaxY: 9}, r.Inset(1))
	assert.True(t, geom.Rect{MaxX: math.NaN(), MaxY: 1}.Empty())
}
