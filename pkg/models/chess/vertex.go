package chess

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// Precision is the fixed-point scale of vertex coordinates: two decimals.
	Precision = 100
	// MaxCoordinate bounds the magnitude of raw coordinates accepted as vertices.
	MaxCoordinate = 1e12
)

// Vertex is a planar location rounded to two decimals and stored as fixed-point
// integers so it can be used directly as a map key.
type Vertex struct {
	X int64
	Y int64
}

// NewVertex rounds x and y half up to two decimals. It reports false for
// coordinates that are not finite or too large to represent.
func NewVertex(x, y float64) (Vertex, bool) {
	if !usable(x) || !usable(y) {
		return Vertex{}, false
	}
	return Vertex{X: round(x), Y: round(y)}, true
}

func usable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) <= MaxCoordinate
}

func round(f float64) int64 {
	return int64(math.Floor(f*Precision + 0.5))
}

func (v Vertex) Compare(o Vertex) int {
	switch {
	case v.X < o.X:
		return -1
	case v.X > o.X:
		return 1
	case v.Y < o.Y:
		return -1
	case v.Y > o.Y:
		return 1
	}
	return 0
}

func (v Vertex) Less(o Vertex) bool { return v.Compare(o) < 0 }

func (v Vertex) Coords() (float64, float64) {
	return float64(v.X) / Precision, float64(v.Y) / Precision
}

func (v Vertex) String() string {
	x, y := v.Coords()
	return strconv.FormatFloat(x, 'f', -1, 64) + "," + strconv.FormatFloat(y, 'f', -1, 64)
}

func ParseVertex(s string) (Vertex, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vertex{}, fmt.Errorf("%w: vertex %q", ErrInvalidEdgeID, s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Vertex{}, fmt.Errorf("%w: vertex %q", ErrInvalidEdgeID, s)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Vertex{}, fmt.Errorf("%w: vertex %q", ErrInvalidEdgeID, s)
	}

	v, ok := NewVertex(x, y)
	if !ok {
		return Vertex{}, fmt.Errorf("%w: vertex %q", ErrInvalidEdgeID, s)
	}
	return v, nil
}
