package chess

import (
	"fmt"

	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

// EdgeID names an undirected edge by its sorted pair of vertices, so both
// traversal directions of a segment map to the same id.
type EdgeID struct {
	A Vertex
	B Vertex
}

func NewEdgeID(v1, v2 Vertex) EdgeID {
	if v2.Less(v1) {
		v1, v2 = v2, v1
	}
	return EdgeID{A: v1, B: v2}
}

// SegmentEdgeID rounds both endpoints of s. It reports false when an endpoint
// is unusable or the segment collapses to a single vertex.
func SegmentEdgeID(s geom.Segment) (EdgeID, bool) {
	v1, ok1 := NewVertex(s.X1, s.Y1)
	v2, ok2 := NewVertex(s.X2, s.Y2)
	if !ok1 || !ok2 || v1 == v2 {
		return EdgeID{}, false
	}
	return NewEdgeID(v1, v2), true
}

func (e EdgeID) Degenerate() bool { return e.A == e.B }

func (e EdgeID) Has(v Vertex) bool { return e.A == v || e.B == v }

// Other returns the endpoint opposite to v.
func (e EdgeID) Other(v Vertex) Vertex {
	if e.A == v {
		return e.B
	}
	return e.A
}

func (e EdgeID) String() string {
	return e.A.String() + "-" + e.B.String()
}

func (e EdgeID) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EdgeID) UnmarshalText(text []byte) error {
	id, err := ParseEdgeID(string(text))
	if err != nil {
		return err
	}
	*e = id
	return nil
}

// ParseEdgeID reads the "x1,y1-x2,y2" form. The separating dash is the first
// one that follows a digit, so negative coordinates parse as well.
func ParseEdgeID(s string) (EdgeID, error) {
	for i := 1; i < len(s); i++ {
		if s[i] != '-' || s[i-1] < '0' || s[i-1] > '9' {
			continue
		}

		v1, err := ParseVertex(s[:i])
		if err != nil {
			return EdgeID{}, err
		}

		v2, err := ParseVertex(s[i+1:])
		if err != nil {
			return EdgeID{}, err
		}

		if v1 == v2 {
			return EdgeID{}, fmt.Errorf("%w: %q has identical endpoints", ErrInvalidEdgeID, s)
		}
		return NewEdgeID(v1, v2), nil
	}

	return EdgeID{}, fmt.Errorf("%w: %q", ErrInvalidEdgeID, s)
}

type Edge struct {
	ID        EdgeID       `json:"id"`
	Segment   geom.Segment `json:"segment"`
	ClaimedBy Turn         `json:"claimedBy"`
}

func (e *Edge) V1() Vertex { return e.ID.A }

func (e *Edge) V2() Vertex { return e.ID.B }

func (e *Edge) Claimed() bool { return e.ClaimedBy != NoPlayer }
