package geometry

import (
	"fmt"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Polygon is a flat convex polygon. Vertices are validated once on construction:
// at least three, coplanar, distinct, ordered along the edge path and convex.
type Polygon struct {
	Surface
	vertices []core.Point
	plane    *Plane
}

// NewPolygon creates a polygon from its vertices in edge order
func NewPolygon(surface Surface, vertices ...core.Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("polygon with %d vertices: %w", len(vertices), ErrTooFewVertices)
	}

	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2], surface)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}

	p := &Polygon{
		Surface:  surface,
		vertices: slices.Clone(vertices),
		plane:    plane,
	}
	if len(vertices) == 3 {
		return p, nil
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	return p, nil
}

// validate checks the vertices beyond the first three, which already
// define a proper plane
func (p *Polygon) validate() error {
	normal := p.plane.normal
	n := len(p.vertices)

	for i := 3; i < n; i++ {
		if !core.IsZero(normal.Dot(p.vertices[i].Subtract(p.vertices[0]))) {
			return fmt.Errorf("vertex %d: %w", i, ErrNotCoplanar)
		}
	}

	edges := make([]core.Vector, n)
	for i := range n {
		edges[i] = p.vertices[(i+1)%n].Subtract(p.vertices[i])
		if edges[i].IsZero() {
			return fmt.Errorf("vertices %d and %d: %w", i, (i+1)%n, ErrCoincidentVertices)
		}
	}

	// Every turn between consecutive edges must go the same way around the normal
	var winding int
	for i := range n {
		turn := core.Sign(normal.Dot(edges[i].Cross(edges[(i+1)%n])))
		switch {
		case turn == 0:
			return fmt.Errorf("vertex %d: %w", (i+1)%n, ErrCollinearVertices)
		case winding == 0:
			winding = turn
		case turn != winding:
			return fmt.Errorf("vertex %d: %w", (i+1)%n, ErrNotConvex)
		}
	}

	// Turning one way is not enough for a star; every other vertex must also
	// lie strictly inside each edge line, which limits the path to one winding.
	for i := range n {
		for k := 2; k < n; k++ {
			j := (i + k) % n
			side := core.Sign(normal.Dot(edges[i].Cross(p.vertices[j].Subtract(p.vertices[i]))))
			if side != winding {
				return fmt.Errorf("vertex %d against edge %d: %w", j, i, ErrNotConvex)
			}
		}
	}
	return nil
}

// Vertices returns a copy of the polygon vertices
func (p *Polygon) Vertices() []core.Point {
	return slices.Clone(p.vertices)
}

// Normal returns the normal of the polygon plane
func (p *Polygon) Normal(core.Point) core.Vector {
	return p.plane.normal
}

// Intersect returns the point where the ray crosses the polygon
func (p *Polygon) Intersect(ray core.Ray) []GeoPoint {
	return p.intersectAs(ray, p)
}

// intersectAs runs the polygon test and reports hits against owner, so that
// types built on Polygon are returned as themselves.
func (p *Polygon) intersectAs(ray core.Ray, owner Geometry) []GeoPoint {
	t, ok := p.plane.root(ray)
	if !ok {
		return nil
	}

	// The hit is inside when the ray passes on the same side of every
	// triangle (origin, vertex i, vertex i+1).
	origin := ray.Origin()
	direction := ray.Direction()
	n := len(p.vertices)

	var side int
	for i := range n {
		vi := p.vertices[i].Subtract(origin)
		vj := p.vertices[(i+1)%n].Subtract(origin)
		s := core.Sign(direction.Dot(vi.Cross(vj).Normalized()))
		if s == 0 {
			return nil
		}
		if i == 0 {
			side = s
		} else if s != side {
			return nil
		}
	}

	return hitsAt(ray, owner, t)
}
