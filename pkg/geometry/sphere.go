package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	center core.Point
	radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, surface Surface) (*Sphere, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrNonPositiveRadius)
	}
	return &Sphere{Surface: surface, center: center, radius: radius}, nil
}

// Center returns the sphere center
func (s *Sphere) Center() core.Point {
	return s.center
}

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Normal returns the outward unit normal at p
func (s *Sphere) Normal(p core.Point) core.Vector {
	return p.Subtract(s.center).Normalized()
}

// Intersect returns up to two hits, nearest first
func (s *Sphere) Intersect(ray core.Ray) []GeoPoint {
	// A ray from the center leaves the sphere after exactly one radius
	if ray.Origin().Equal(s.center) {
		return hitsAt(ray, s, s.radius)
	}

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin().Subtract(s.center)
	direction := ray.Direction()
	a := direction.LengthSquared()
	b := 2 * oc.Dot(direction)
	c := oc.LengthSquared() - s.radius*s.radius

	return hitsAt(ray, s, positiveRoots(a, b, c)...)
}
