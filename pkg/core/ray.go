package core

import "fmt"

// RayOffset is how far a secondary ray's origin is pushed off the surface it starts on
const RayOffset = 0.1

// Ray is a half-line with a unit length direction
type Ray struct {
	origin    Point
	direction Vector
}

// NewRay creates a ray, normalizing its direction
func NewRay(origin Point, direction Vector) Ray {
	return Ray{origin: origin, direction: direction.Normalized()}
}

// NewOffsetRay creates a ray leaving a surface point. The origin is moved
// RayOffset along the surface normal, to the side the direction points to,
// so the ray does not hit the surface it starts on.
func NewOffsetRay(point Point, direction, normal Vector) Ray {
	delta := RayOffset
	if normal.Dot(direction) <= 0 {
		delta = -RayOffset
	}
	return NewRay(point.Add(normal.Scale(delta)), direction)
}

// Origin returns the starting point of the ray
func (r Ray) Origin() Point {
	return r.origin
}

// Direction returns the unit direction of the ray
func (r Ray) Direction() Vector {
	return r.direction
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.origin.Add(r.direction.Scale(t))
}

// T returns the ray parameter of the projection of p onto the ray
func (r Ray) T(p Point) float64 {
	return r.direction.Dot(p.Subtract(r.origin))
}

// Equal reports whether two rays share origin and direction
func (r Ray) Equal(other Ray) bool {
	return r.origin.Equal(other.origin) && r.direction.Equal(other.direction)
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray{%v -> %v}", r.origin, r.direction)
}
