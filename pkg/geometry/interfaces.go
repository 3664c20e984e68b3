package geometry

import (
	"errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

var (
	ErrTooFewVertices      = errors.New("polygon needs at least 3 vertices")
	ErrCoincidentVertices  = errors.New("coincident vertices")
	ErrCollinearVertices   = errors.New("collinear vertices")
	ErrNotCoplanar         = errors.New("vertices are not coplanar")
	ErrNotConvex           = errors.New("polygon is not convex or its vertices are out of order")
	ErrNonPositiveRadius   = errors.New("radius must be positive")
	ErrNonPositiveHeight   = errors.New("height must be positive")
	ErrCameraNotOrthogonal = errors.New("camera vectors are not orthogonal")
)

// Intersectable is anything a ray can be intersected with.
// Intersect returns the hits sorted by distance along the ray, or nil.
type Intersectable interface {
	Intersect(ray core.Ray) []GeoPoint
}

// Geometry is a primitive surface that can be shaded
type Geometry interface {
	Intersectable
	Normal(p core.Point) core.Vector
	Emission() core.Color
	Material() core.Material
}

// GeoPoint is an intersection point together with the geometry it lies on
type GeoPoint struct {
	Geometry Geometry
	Point    core.Point
}

// Equal reports whether both hits are on the same geometry at the same point
func (gp GeoPoint) Equal(other GeoPoint) bool {
	return gp.Geometry == other.Geometry && gp.Point.Equal(other.Point)
}

// Surface holds the shading attributes shared by all primitives
type Surface struct {
	emission core.Color
	material core.Material
}

// NewSurface creates a surface with the given emission color and material
func NewSurface(emission core.Color, material core.Material) Surface {
	return Surface{emission: emission, material: material}
}

// Emission returns the color the surface emits
func (s Surface) Emission() core.Color {
	return s.emission
}

// Material returns the surface material
func (s Surface) Material() core.Material {
	return s.material
}

// hitsAt converts ray parameters into hit points owned by g
func hitsAt(ray core.Ray, g Geometry, ts ...float64) []GeoPoint {
	if len(ts) == 0 {
		return nil
	}
	hits := make([]GeoPoint, len(ts))
	for i, t := range ts {
		hits[i] = GeoPoint{Geometry: g, Point: ray.At(t)}
	}
	return hits
}
