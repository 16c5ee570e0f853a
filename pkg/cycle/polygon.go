package cycle

import "github.com/HuXin0817/voronoi-edges/pkg/models/chess"

// Polygons drops cycles that only repeat an earlier one in the opposite
// orientation, leaving one entry per geometric loop.
func Polygons(cycles []Cycle) (polygons []Cycle) {
	seen := make(map[string]struct{}, len(cycles))
	for _, c := range cycles {
		if _, ok := seen[c.reversed().String()]; ok {
			continue
		}
		seen[c.String()] = struct{}{}
		polygons = append(polygons, c)
	}
	return
}

// reversed walks c the other way round, still starting at its first vertex.
func (c Cycle) reversed() Cycle {
	r := make(Cycle, 0, len(c))
	r = append(r, c[0])
	for i := len(c) - 1; i > 0; i-- {
		r = append(r, c[i])
	}
	return r
}

// EdgeSet collects every edge that lies on at least one cycle.
func EdgeSet(cycles []Cycle) map[chess.EdgeID]struct{} {
	set := make(map[chess.EdgeID]struct{})
	for _, c := range cycles {
		for _, e := range c.Edges() {
			set[e] = struct{}{}
		}
	}
	return set
}
