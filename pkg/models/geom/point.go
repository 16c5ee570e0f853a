package geom

import (
	"math"
	"math/rand"
)

// Point is a seed of the partition.
type Point struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	ID int     `json:"id"`
}

type Rect struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

func NewRect(width, height float64) Rect {
	return Rect{MaxX: width, MaxY: height}
}

func (r Rect) Width() float64 { return r.MaxX - r.MinX }

func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) Empty() bool {
	return !(r.Width() > 0 && r.Height() > 0) || math.IsInf(r.Width(), 0) || math.IsInf(r.Height(), 0)
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Inset shrinks r by margin on every side. A margin that would empty the
// rectangle is ignored.
func (r Rect) Inset(margin float64) Rect {
	in := Rect{MinX: r.MinX + margin, MinY: r.MinY + margin, MaxX: r.MaxX - margin, MaxY: r.MaxY - margin}
	if in.Empty() {
		return r
	}
	return in
}

// RandomPoints scatters n seeds uniformly inside bounds shrunk by margin.
func RandomPoints(n int, bounds Rect, margin float64, rng *rand.Rand) (points []Point) {
	area := bounds.Inset(margin)
	for i := range n {
		points = append(points, Point{
			X:  area.MinX + rng.Float64()*area.Width(),
			Y:  area.MinY + rng.Float64()*area.Height(),
			ID: i,
		})
	}
	return
}
