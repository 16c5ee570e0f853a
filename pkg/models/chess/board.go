package chess

import (
	"fmt"

	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

// Board is the deduplicated edge graph of one partition together with the
// ownership of every edge. Its structure is fixed once built; only claims
// change.
type Board struct {
	Points    []geom.Point
	Edges     map[EdgeID]*Edge
	Malformed int

	order    []EdgeID
	claimed  map[Turn][]EdgeID
	vertices map[Vertex]struct{}
}

func NewBoard(points []geom.Point, cells ...geom.Cell) (newBoard *Board) {
	newBoard = &Board{
		Points:   points,
		Edges:    make(map[EdgeID]*Edge),
		claimed:  make(map[Turn][]EdgeID),
		vertices: make(map[Vertex]struct{}),
	}

	for _, c := range cells {
		newBoard.addCell(c)
	}

	return
}

// addCell walks one cell boundary. Unusable segments are dropped and counted;
// the closing segment is added when the walk does not return to its start.
// A cell that lost any segment is never closed across the gap.
func (b *Board) addCell(c geom.Cell) {
	var segments []geom.Segment
	var ids []EdgeID
	dropped := false
	for _, s := range c.Segments {
		id, ok := SegmentEdgeID(s)
		if !ok {
			b.Malformed++
			dropped = true
			continue
		}
		segments = append(segments, s)
		ids = append(ids, id)
	}

	if len(segments) < 2 {
		return
	}

	if !dropped {
		first, last := segments[0], segments[len(segments)-1]
		closing := geom.NewSegment(last.X2, last.Y2, first.X1, first.Y1)
		if id, ok := SegmentEdgeID(closing); ok {
			segments = append(segments, closing)
			ids = append(ids, id)
		}
	}

	for i, id := range ids {
		b.insert(id, segments[i])
	}
}

func (b *Board) insert(id EdgeID, s geom.Segment) {
	if _, c := b.Edges[id]; c {
		return
	}

	b.Edges[id] = &Edge{ID: id, Segment: s}
	b.order = append(b.order, id)
	b.vertices[id.A] = struct{}{}
	b.vertices[id.B] = struct{}{}
}

// Err reports filtered boundary data. A non-nil result never invalidates the
// board.
func (b *Board) Err() error {
	if b.Malformed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d dropped", ErrMalformedBoundary, b.Malformed)
}

func (b *Board) Edge(id EdgeID) (*Edge, bool) {
	e, c := b.Edges[id]
	return e, c
}

// AllEdges lists edges in the order they were first inserted.
func (b *Board) AllEdges() (edges []*Edge) {
	for _, id := range b.order {
		edges = append(edges, b.Edges[id])
	}
	return
}

func (b *Board) EdgesCount() int { return len(b.order) }

func (b *Board) VerticesCount() int { return len(b.vertices) }

func (b *Board) ClaimedCount() int {
	return len(b.claimed[Player1]) + len(b.claimed[Player2])
}

func (b *Board) FreeEdgesCount() int {
	return b.EdgesCount() - b.ClaimedCount()
}

func (b *Board) FreeEdges() (freeEdges []EdgeID) {
	for _, id := range b.order {
		if !b.Edges[id].Claimed() {
			freeEdges = append(freeEdges, id)
		}
	}
	return
}

func (b *Board) Full() bool {
	return b.FreeEdgesCount() == 0
}

// Claim gives the edge to player. Claims are permanent for the lifetime of
// the board.
func (b *Board) Claim(id EdgeID, player Turn) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	e, c := b.Edges[id]
	if !c {
		return fmt.Errorf("%w: %s", ErrUnknownEdge, id)
	}

	if e.Claimed() {
		return fmt.Errorf("%w: %s by %s", ErrAlreadyClaimed, id, e.ClaimedBy)
	}

	e.ClaimedBy = player
	b.claimed[player] = append(b.claimed[player], id)
	return nil
}

func (b *Board) Owner(id EdgeID) Turn {
	if e, c := b.Edges[id]; c {
		return e.ClaimedBy
	}
	return NoPlayer
}

// EdgesOf returns player's edges in claim order.
func (b *Board) EdgesOf(player Turn) []EdgeID {
	return append([]EdgeID(nil), b.claimed[player]...)
}
