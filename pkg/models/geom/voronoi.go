package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

const EPS float64 = 1e-9

var (
	ErrEmptyBounds = errors.New("geom: bounds must have positive width and height")
	ErrNoPoints    = errors.New("geom: at least one point is required")
)

// Provider partitions a bounded rectangle into one cell per seed point.
type Provider interface {
	Partition(points []Point, bounds Rect) ([]Cell, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(points []Point, bounds Rect) ([]Cell, error)

func (f ProviderFunc) Partition(points []Point, bounds Rect) ([]Cell, error) {
	return f(points, bounds)
}

// Voronoi builds each cell by clipping the bounding rectangle with the
// bisector half-plane of every other seed. It is quadratic in the number of
// seeds, which is fine for boards of a few hundred points.
//
// Cells are reported as open polylines: the segment from the last vertex back
// to the first is not emitted.
type Voronoi struct{}

func (Voronoi) Partition(points []Point, bounds Rect) ([]Cell, error) {
	if bounds.Empty() {
		return nil, ErrEmptyBounds
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	sites := make([]r2.Vec, len(points))
	for i, p := range points {
		if !bounds.Contains(p.X, p.Y) {
			return nil, fmt.Errorf("geom: point %d (%g, %g) outside bounds", p.ID, p.X, p.Y)
		}
		sites[i] = r2.Vec{X: p.X, Y: p.Y}
	}

	cells := make([]Cell, 0, len(points))
	for i, site := range sites {
		poly := []r2.Vec{
			{X: bounds.MinX, Y: bounds.MinY},
			{X: bounds.MaxX, Y: bounds.MinY},
			{X: bounds.MaxX, Y: bounds.MaxY},
			{X: bounds.MinX, Y: bounds.MaxY},
		}
		for j, other := range sites {
			if i == j || r2.Norm(r2.Sub(other, site)) < EPS {
				continue
			}
			poly = clip(poly, site, other)
			if len(poly) == 0 {
				break
			}
		}

		cells = append(cells, Cell{Site: points[i], Segments: polyline(dedupe(poly))})
	}

	return cells, nil
}

// clip keeps the part of poly lying on a's side of the bisector of a and b.
func clip(poly []r2.Vec, a, b r2.Vec) (out []r2.Vec) {
	normal := r2.Sub(b, a)
	mid := r2.Scale(0.5, r2.Add(a, b))
	side := func(p r2.Vec) float64 { return r2.Dot(r2.Sub(p, mid), normal) }

	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		dc, dp := side(cur), side(prev)
		switch {
		case dc <= 0:
			if dp > 0 && dc < 0 {
				out = append(out, intersect(prev, cur, dp, dc))
			}
			out = append(out, cur)
		case dp < 0:
			out = append(out, intersect(prev, cur, dp, dc))
		}
	}

	return
}

func intersect(p, q r2.Vec, dp, dq float64) r2.Vec {
	t := dp / (dp - dq)
	return r2.Add(p, r2.Scale(t, r2.Sub(q, p)))
}

func dedupe(poly []r2.Vec) (out []r2.Vec) {
	for _, p := range poly {
		if len(out) > 0 && r2.Norm(r2.Sub(p, out[len(out)-1])) < EPS {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && r2.Norm(r2.Sub(out[0], out[len(out)-1])) < EPS {
		out = out[:len(out)-1]
	}
	return
}

func polyline(poly []r2.Vec) (segments []Segment) {
	for k := 0; k+1 < len(poly); k++ {
		segments = append(segments, NewSegment(poly[k].X, poly[k].Y, poly[k+1].X, poly[k+1].Y))
	}
	return
}
