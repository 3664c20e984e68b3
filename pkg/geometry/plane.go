package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	point  core.Point
	normal core.Vector
}

// NewPlane creates a new plane; the normal is normalized
func NewPlane(point core.Point, normal core.Vector, surface Surface) *Plane {
	return &Plane{
		Surface: surface,
		point:   point,
		normal:  normal.Normalized(),
	}
}

// NewPlaneFromPoints creates the plane through three points
func NewPlaneFromPoints(p1, p2, p3 core.Point, surface Surface) (*Plane, error) {
	if p1.Equal(p2) || p2.Equal(p3) || p1.Equal(p3) {
		return nil, fmt.Errorf("plane through %v, %v, %v: %w", p1, p2, p3, ErrCoincidentVertices)
	}

	normal := p3.Subtract(p1).Cross(p3.Subtract(p2))
	if normal.IsZero() {
		return nil, fmt.Errorf("plane through %v, %v, %v: %w", p1, p2, p3, ErrCollinearVertices)
	}

	return NewPlane(p1, normal, surface), nil
}

// Point returns the reference point of the plane
func (p *Plane) Point() core.Point {
	return p.point
}

// Normal returns the plane normal, the same everywhere
func (p *Plane) Normal(core.Point) core.Vector {
	return p.normal
}

// Intersect returns the single point where the ray crosses the plane
func (p *Plane) Intersect(ray core.Ray) []GeoPoint {
	t, ok := p.root(ray)
	if !ok {
		return nil
	}
	return hitsAt(ray, p, t)
}

// root computes t = N·(Q-E) / N·D. Rays starting on the reference point,
// parallel rays and hits behind the origin are misses.
func (p *Plane) root(ray core.Ray) (float64, bool) {
	if ray.Origin().Equal(p.point) {
		return 0, false
	}

	denominator := core.AlignZero(p.normal.Dot(ray.Direction()))
	if denominator == 0 {
		return 0, false
	}

	numerator := core.AlignZero(p.normal.Dot(p.point.Subtract(ray.Origin())))
	t := core.AlignZero(numerator / denominator)
	if t <= 0 {
		return 0, false
	}
	return t, true
}
