package geom

import "math"

type Segment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (s Segment) Finite() bool {
	for _, f := range [...]float64{s.X1, s.Y1, s.X2, s.Y2} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// Cell is the boundary of one seed's region, walked as a polyline. Providers
// may leave out the segment that closes the polyline back to its start.
type Cell struct {
	Site     Point
	Segments []Segment
}
