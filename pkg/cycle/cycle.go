// Package cycle finds the closed loops formed by one player's edges.
//
// Detect enumerates simple paths exhaustively from every vertex of degree two
// or more, so its cost grows exponentially with the density of the subgraph.
// It is meant for a single board's worth of edges, a few hundred at most.
package cycle

import (
	"strings"

	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
)

// Cycle is a closed loop of at least three distinct vertices, rotated to
// start at its smallest vertex. The last vertex connects back to the first.
type Cycle []chess.Vertex

// Edges returns the edge ids between consecutive vertices, wrapping around.
func (c Cycle) Edges() (edges []chess.EdgeID) {
	for i, v := range c {
		edges = append(edges, chess.NewEdgeID(v, c[(i+1)%len(c)]))
	}
	return
}

func (c Cycle) String() string {
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

type graph struct {
	vertices []chess.Vertex
	adjacent map[chess.Vertex][]chess.Vertex
}

// newGraph keeps vertices and neighbours in first-seen order so traversal,
// and with it the order of reported cycles, is deterministic.
func newGraph(edges []chess.EdgeID) *graph {
	g := &graph{adjacent: make(map[chess.Vertex][]chess.Vertex)}
	seen := make(map[chess.EdgeID]struct{}, len(edges))
	for _, e := range edges {
		if _, c := seen[e]; c || e.Degenerate() {
			continue
		}
		seen[e] = struct{}{}

		for _, v := range [...]chess.Vertex{e.A, e.B} {
			if _, c := g.adjacent[v]; !c {
				g.vertices = append(g.vertices, v)
				g.adjacent[v] = nil
			}
		}
		g.adjacent[e.A] = append(g.adjacent[e.A], e.B)
		g.adjacent[e.B] = append(g.adjacent[e.B], e.A)
	}
	return g
}

type search struct {
	g      *graph
	path   []chess.Vertex
	onPath map[chess.Vertex]struct{}
	seen   map[string]struct{}
	cycles []Cycle
}

// Detect returns the cycles formed by edges, in discovery order.
//
// Every vertex with at least two neighbours is used once as a root of an
// exhaustive depth-first walk over simple paths. Reaching the root again from
// a path of more than two vertices records the path as a cycle. Cycles are
// rotated to start at their smallest vertex and deduplicated by the rotated
// sequence across all roots, so a polygon found again from a later root is not
// listed twice; the two orientations of one polygon stay distinct.
func Detect(edges []chess.EdgeID) []Cycle {
	if len(edges) < 3 {
		return nil
	}

	g := newGraph(edges)
	s := &search{
		g:      g,
		path:   make([]chess.Vertex, 0, len(g.vertices)),
		onPath: make(map[chess.Vertex]struct{}, len(g.vertices)),
		seen:   make(map[string]struct{}),
	}

	rooted := make(map[chess.Vertex]struct{}, len(g.vertices))
	for _, v := range g.vertices {
		if _, c := rooted[v]; c || len(g.adjacent[v]) < 2 {
			continue
		}
		s.visit(v)
		rooted[v] = struct{}{}
	}

	return s.cycles
}

func (s *search) visit(current chess.Vertex) {
	s.path = append(s.path, current)
	s.onPath[current] = struct{}{}

	for _, next := range s.g.adjacent[current] {
		if _, c := s.onPath[next]; !c {
			s.visit(next)
		} else if len(s.path) > 2 && next == s.path[0] {
			s.record()
		}
	}

	s.path = s.path[:len(s.path)-1]
	delete(s.onPath, current)
}

func (s *search) record() {
	c := normalize(s.path)
	key := c.String()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.cycles = append(s.cycles, c)
}

// normalize copies path rotated to begin at its smallest vertex.
func normalize(path []chess.Vertex) Cycle {
	m := 0
	for i, v := range path {
		if v.Less(path[m]) {
			m = i
		}
	}

	c := make(Cycle, 0, len(path))
	c = append(c, path[m:]...)
	return append(c, path[:m]...)
}
