package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Tube is an infinite cylinder around an axis ray
type Tube struct {
	Surface
	axis   core.Ray
	radius float64
}

// NewTube creates a new tube
func NewTube(axis core.Ray, radius float64, surface Surface) (*Tube, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("tube radius %g: %w", radius, ErrNonPositiveRadius)
	}
	return &Tube{Surface: surface, axis: axis, radius: radius}, nil
}

// Axis returns the axis ray of the tube
func (t *Tube) Axis() core.Ray {
	return t.axis
}

// Radius returns the tube radius
func (t *Tube) Radius() float64 {
	return t.radius
}

// Normal returns the radial unit normal at p
func (t *Tube) Normal(p core.Point) core.Vector {
	center := t.axis.At(t.axis.T(p))
	return p.Subtract(center).Normalized()
}

// Intersect returns up to two hits, nearest first
func (t *Tube) Intersect(ray core.Ray) []GeoPoint {
	return hitsAt(ray, t, t.roots(ray)...)
}

// roots solves |(E + tD) x A|² = r², which with K = D x A and
// E' = (E - O) x A becomes |K|²t² + 2(K·E')t + |E'|² - r² = 0.
func (t *Tube) roots(ray core.Ray) []float64 {
	axisDir := t.axis.Direction()

	k := ray.Direction().Cross(axisDir)
	if k.IsZero() {
		// parallel to the axis: either always inside or never touching
		return nil
	}

	var e core.Vector
	onAxis := ray.Origin().Equal(t.axis.Origin())
	if !onAxis {
		e = ray.Origin().Subtract(t.axis.Origin()).Cross(axisDir)
		onAxis = e.IsZero()
	}
	if onAxis {
		return []float64{t.radius / k.Length()}
	}

	return positiveRoots(k.LengthSquared(), 2*k.Dot(e), e.LengthSquared()-t.radius*t.radius)
}
